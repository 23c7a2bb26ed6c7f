package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/logger"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shopspring/decimal"
)

type CompanyController struct {
	companies *repositories.CompanyRepository
}

func NewCompanyController(companies *repositories.CompanyRepository) *CompanyController {
	return &CompanyController{companies: companies}
}

type companyInput struct {
	Name        string          `json:"name"        validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"nullable,max=2000"`
	Status      string          `json:"status"      validate:"nullable,in=active,inactive"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
}

// checkAmounts rejects negative money fields, which the struct-tag
// validator cannot see inside decimal.Decimal.
func (in *companyInput) checkAmounts() map[string]string {
	errs := map[string]string{}
	if in.Budget.IsNegative() {
		errs["budget"] = "The budget must not be negative."
	}
	if in.Spent.IsNegative() {
		errs["spent"] = "The spent must not be negative."
	}
	return errs
}

// Index handles GET /api/companies.
func (c *CompanyController) Index(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companies.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, companies)
}

// Show handles GET /api/companies/{id}.
func (c *CompanyController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	company, err := c.companies.Find(id)
	if err != nil {
		notFoundOr(w, err, "Company")
		return
	}
	response.Success(w, company)
}

// Store handles POST /api/companies.
func (c *CompanyController) Store(w http.ResponseWriter, r *http.Request) {
	var input companyInput
	if !bindJSON(w, r, &input) {
		return
	}
	if errs := input.checkAmounts(); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	company := models.Company{
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		Budget:      input.Budget,
		Spent:       input.Spent,
	}
	if err := c.companies.Create(&company); err != nil {
		logger.WithCtx(r.Context()).Error("create company", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, company)
}

// Update handles PUT /api/companies/{id}.
func (c *CompanyController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	company, err := c.companies.Find(id)
	if err != nil {
		notFoundOr(w, err, "Company")
		return
	}

	var input companyInput
	if !bindJSON(w, r, &input) {
		return
	}
	if errs := input.checkAmounts(); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	company.Name = input.Name
	company.Description = input.Description
	if input.Status != "" {
		company.Status = input.Status
	}
	company.Budget = input.Budget
	company.Spent = input.Spent

	if err := c.companies.Update(&company); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, company)
}
