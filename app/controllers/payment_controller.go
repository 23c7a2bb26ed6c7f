package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shashiranjanraj/fintrack/pkg/validate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentController struct {
	payments  *repositories.PaymentRepository
	companies *repositories.CompanyRepository
	vendors   *repositories.VendorRepository
	invoices  *repositories.InvoiceRepository
}

func NewPaymentController(
	payments *repositories.PaymentRepository,
	companies *repositories.CompanyRepository,
	vendors *repositories.VendorRepository,
	invoices *repositories.InvoiceRepository,
) *PaymentController {
	return &PaymentController{payments: payments, companies: companies, vendors: vendors, invoices: invoices}
}

type paymentInput struct {
	CompanyID   uint            `json:"company_id"   validate:"required"`
	VendorID    uint            `json:"vendor_id"    validate:"required"`
	InvoiceID   *uint           `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"       validate:"nullable,in=pending,completed,failed"`
	PaymentDate string          `json:"payment_date" validate:"required,date"`
	Method      string          `json:"method"       validate:"required,in=wire_transfer,card,other"`
	Description string          `json:"description"  validate:"nullable,max=2000"`
}

// Index handles GET /api/payments.
func (c *PaymentController) Index(w http.ResponseWriter, r *http.Request) {
	payments, err := c.payments.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, payments)
}

// Show handles GET /api/payments/{id}.
func (c *PaymentController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	payment, err := c.payments.Find(id)
	if err != nil {
		notFoundOr(w, err, "Payment")
		return
	}
	response.Success(w, payment)
}

// Store handles POST /api/payments. Company and vendor must exist; when an
// invoice_id is supplied it must name a real invoice.
func (c *PaymentController) Store(w http.ResponseWriter, r *http.Request) {
	var input paymentInput
	if !bindJSON(w, r, &input) {
		return
	}

	payment, ok := c.buildPayment(w, &input)
	if !ok {
		return
	}

	if err := c.payments.Create(payment); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, payment)
}

// Update handles PUT /api/payments/{id}.
func (c *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existing, err := c.payments.Find(id)
	if err != nil {
		notFoundOr(w, err, "Payment")
		return
	}

	var input paymentInput
	if !bindJSON(w, r, &input) {
		return
	}

	payment, ok := c.buildPayment(w, &input)
	if !ok {
		return
	}
	payment.Model = existing.Model

	if err := c.payments.Update(payment); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, payment)
}

// Destroy handles DELETE /api/payments/{id} (admin only, enforced by rbac
// middleware at the route).
func (c *PaymentController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.payments.Delete(id); err != nil {
		notFoundOr(w, err, "Payment")
		return
	}

	response.Message(w, "Payment deleted")
}

// buildPayment validates references and amounts and assembles the model.
// On failure the error response has already been written.
func (c *PaymentController) buildPayment(w http.ResponseWriter, input *paymentInput) (*models.Payment, bool) {
	if input.Amount.IsNegative() {
		response.ValidationError(w, map[string]string{"amount": "The amount must not be negative."})
		return nil, false
	}

	exists, err := c.companies.Exists(input.CompanyID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}
	if !exists {
		response.Error(w, http.StatusBadRequest, "Unknown company")
		return nil, false
	}

	exists, err = c.vendors.Exists(input.VendorID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return nil, false
	}
	if !exists {
		response.Error(w, http.StatusBadRequest, "Unknown vendor")
		return nil, false
	}

	if input.InvoiceID != nil {
		if _, err := c.invoices.Find(*input.InvoiceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(w, http.StatusBadRequest, "Unknown invoice")
				return nil, false
			}
			response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return nil, false
		}
	}

	status := input.Status
	if status == "" {
		status = models.PaymentPending
	}

	date, _ := validate.ParseDate(input.PaymentDate) // tag rule guaranteed parse

	return &models.Payment{
		CompanyID:   input.CompanyID,
		VendorID:    input.VendorID,
		InvoiceID:   input.InvoiceID,
		Amount:      input.Amount,
		Status:      status,
		PaymentDate: date,
		Method:      input.Method,
		Description: input.Description,
	}, true
}
