package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/services"
	"github.com/shashiranjanraj/fintrack/pkg/response"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// Company handles GET /api/dashboard/company/{id}.
func (c *DashboardController) Company(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := c.service.CompanyDashboard(id)
	if err != nil {
		notFoundOr(w, err, "Company")
		return
	}

	response.Success(w, view)
}
