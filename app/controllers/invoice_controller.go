package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shashiranjanraj/fintrack/pkg/validate"
	"github.com/shopspring/decimal"
)

type InvoiceController struct {
	invoices  *repositories.InvoiceRepository
	companies *repositories.CompanyRepository
	vendors   *repositories.VendorRepository
}

func NewInvoiceController(
	invoices *repositories.InvoiceRepository,
	companies *repositories.CompanyRepository,
	vendors *repositories.VendorRepository,
) *InvoiceController {
	return &InvoiceController{invoices: invoices, companies: companies, vendors: vendors}
}

type invoiceInput struct {
	CompanyID   uint            `json:"company_id"  validate:"required"`
	VendorID    uint            `json:"vendor_id"   validate:"required"`
	Number      string          `json:"number"      validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"      validate:"nullable,in=pending,paid,overdue"`
	IssueDate   string          `json:"issue_date"  validate:"required,date"`
	DueDate     string          `json:"due_date"    validate:"required,date"`
	Description string          `json:"description" validate:"nullable,max=2000"`
}

// dates parses and cross-checks the issue/due dates. The struct-tag rules
// have already guaranteed both parse.
func (in *invoiceInput) dates() (issue, due time.Time, ok bool) {
	issue, _ = validate.ParseDate(in.IssueDate)
	due, _ = validate.ParseDate(in.DueDate)
	return issue, due, !due.Before(issue)
}

// Index handles GET /api/invoices.
func (c *InvoiceController) Index(w http.ResponseWriter, r *http.Request) {
	invoices, err := c.invoices.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, invoices)
}

// Show handles GET /api/invoices/{id}.
func (c *InvoiceController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	invoice, err := c.invoices.Find(id)
	if err != nil {
		notFoundOr(w, err, "Invoice")
		return
	}
	response.Success(w, invoice)
}

// Store handles POST /api/invoices. Company and vendor must exist and the
// invoice number must be unique within the company.
func (c *InvoiceController) Store(w http.ResponseWriter, r *http.Request) {
	var input invoiceInput
	if !bindJSON(w, r, &input) {
		return
	}

	if input.Amount.IsNegative() {
		response.ValidationError(w, map[string]string{"amount": "The amount must not be negative."})
		return
	}

	issue, due, ok := input.dates()
	if !ok {
		response.ValidationError(w, map[string]string{"due_date": "The due_date must be on or after the issue_date."})
		return
	}

	if !c.checkRefs(w, input.CompanyID, input.VendorID) {
		return
	}

	dup, err := c.invoices.NumberExists(input.CompanyID, input.Number)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if dup {
		response.Error(w, http.StatusConflict, "Invoice number already exists for this company")
		return
	}

	status := input.Status
	if status == "" {
		status = models.InvoicePending
	}

	invoice := models.Invoice{
		CompanyID:   input.CompanyID,
		VendorID:    input.VendorID,
		Number:      input.Number,
		Amount:      input.Amount,
		Status:      status,
		IssueDate:   issue,
		DueDate:     due,
		Description: input.Description,
	}
	if err := c.invoices.Create(&invoice); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, invoice)
}

// Update handles PUT /api/invoices/{id}.
func (c *InvoiceController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	invoice, err := c.invoices.Find(id)
	if err != nil {
		notFoundOr(w, err, "Invoice")
		return
	}

	var input invoiceInput
	if !bindJSON(w, r, &input) {
		return
	}

	if input.Amount.IsNegative() {
		response.ValidationError(w, map[string]string{"amount": "The amount must not be negative."})
		return
	}

	issue, due, ok := input.dates()
	if !ok {
		response.ValidationError(w, map[string]string{"due_date": "The due_date must be on or after the issue_date."})
		return
	}

	if !c.checkRefs(w, input.CompanyID, input.VendorID) {
		return
	}

	if input.CompanyID != invoice.CompanyID || input.Number != invoice.Number {
		dup, err := c.invoices.NumberExists(input.CompanyID, input.Number)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if dup {
			response.Error(w, http.StatusConflict, "Invoice number already exists for this company")
			return
		}
	}

	invoice.CompanyID = input.CompanyID
	invoice.VendorID = input.VendorID
	invoice.Number = input.Number
	invoice.Amount = input.Amount
	if input.Status != "" {
		invoice.Status = input.Status
	}
	invoice.IssueDate = issue
	invoice.DueDate = due
	invoice.Description = input.Description

	if err := c.invoices.Update(&invoice); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, invoice)
}

// Destroy handles DELETE /api/invoices/{id} (admin only, enforced by rbac
// middleware at the route).
func (c *InvoiceController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.invoices.Delete(id); err != nil {
		notFoundOr(w, err, "Invoice")
		return
	}

	response.Message(w, "Invoice deleted")
}

func (c *InvoiceController) checkRefs(w http.ResponseWriter, companyID, vendorID uint) bool {
	exists, err := c.companies.Exists(companyID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	if !exists {
		response.Error(w, http.StatusBadRequest, "Unknown company")
		return false
	}

	exists, err = c.vendors.Exists(vendorID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return false
	}
	if !exists {
		response.Error(w, http.StatusBadRequest, "Unknown vendor")
		return false
	}
	return true
}
