package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shopspring/decimal"
)

type PodController struct {
	pods      *repositories.PodRepository
	companies *repositories.CompanyRepository
}

func NewPodController(pods *repositories.PodRepository, companies *repositories.CompanyRepository) *PodController {
	return &PodController{pods: pods, companies: companies}
}

type podInput struct {
	Name        string          `json:"name"        validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"nullable,max=2000"`
	CompanyID   uint            `json:"company_id"  validate:"required"`
	Status      string          `json:"status"      validate:"nullable,in=active,inactive"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
}

// Index handles GET /api/pods.
func (c *PodController) Index(w http.ResponseWriter, r *http.Request) {
	pods, err := c.pods.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, pods)
}

// Show handles GET /api/pods/{id}.
func (c *PodController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pod, err := c.pods.Find(id)
	if err != nil {
		notFoundOr(w, err, "Pod")
		return
	}
	response.Success(w, pod)
}

// Store handles POST /api/pods. The owning company must exist.
func (c *PodController) Store(w http.ResponseWriter, r *http.Request) {
	var input podInput
	if !bindJSON(w, r, &input) {
		return
	}
	if input.Budget.IsNegative() || input.Spent.IsNegative() {
		response.ValidationError(w, map[string]string{"budget": "Amounts must not be negative."})
		return
	}

	exists, err := c.companies.Exists(input.CompanyID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !exists {
		response.Error(w, http.StatusBadRequest, "Unknown company")
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	pod := models.Pod{
		Name:        input.Name,
		Description: input.Description,
		CompanyID:   input.CompanyID,
		Budget:      input.Budget,
		Spent:       input.Spent,
		Status:      status,
	}
	if err := c.pods.Create(&pod); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Created(w, pod)
}

// Update handles PUT /api/pods/{id}.
func (c *PodController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pod, err := c.pods.Find(id)
	if err != nil {
		notFoundOr(w, err, "Pod")
		return
	}

	var input podInput
	if !bindJSON(w, r, &input) {
		return
	}
	if input.Budget.IsNegative() || input.Spent.IsNegative() {
		response.ValidationError(w, map[string]string{"budget": "Amounts must not be negative."})
		return
	}

	if input.CompanyID != pod.CompanyID {
		exists, err := c.companies.Exists(input.CompanyID)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if !exists {
			response.Error(w, http.StatusBadRequest, "Unknown company")
			return
		}
		pod.CompanyID = input.CompanyID
	}

	pod.Name = input.Name
	pod.Description = input.Description
	pod.Budget = input.Budget
	pod.Spent = input.Spent
	if input.Status != "" {
		pod.Status = input.Status
	}

	if err := c.pods.Update(&pod); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, pod)
}
