package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/cache"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shopspring/decimal"
)

// vendorListCacheKey caches the full vendor list briefly. The dashboard
// aggregation never reads this cache.
const vendorListCacheKey = "vendors:all"

const vendorListCacheTTL = 30 * time.Second

type VendorController struct {
	vendors *repositories.VendorRepository
}

func NewVendorController(vendors *repositories.VendorRepository) *VendorController {
	return &VendorController{vendors: vendors}
}

type vendorInput struct {
	Name        string          `json:"name"        validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"nullable,max=2000"`
	Category    string          `json:"category"    validate:"nullable,max=100"`
	Status      string          `json:"status"      validate:"nullable,in=active,inactive"`
	TotalSpend  decimal.Decimal `json:"total_spend"`
}

// Index handles GET /api/vendors.
func (c *VendorController) Index(w http.ResponseWriter, r *http.Request) {
	var vendors []models.Vendor
	if cache.Get(vendorListCacheKey, &vendors) {
		response.Success(w, vendors)
		return
	}

	vendors, err := c.vendors.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	cache.Set(vendorListCacheKey, vendors, vendorListCacheTTL) //nolint:errcheck
	response.Success(w, vendors)
}

// Show handles GET /api/vendors/{id}.
func (c *VendorController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	vendor, err := c.vendors.Find(id)
	if err != nil {
		notFoundOr(w, err, "Vendor")
		return
	}
	response.Success(w, vendor)
}

// Store handles POST /api/vendors.
func (c *VendorController) Store(w http.ResponseWriter, r *http.Request) {
	var input vendorInput
	if !bindJSON(w, r, &input) {
		return
	}
	if input.TotalSpend.IsNegative() {
		response.ValidationError(w, map[string]string{"total_spend": "The total_spend must not be negative."})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	vendor := models.Vendor{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Status:      status,
		TotalSpend:  input.TotalSpend,
	}
	if err := c.vendors.Create(&vendor); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	cache.Forget(vendorListCacheKey) //nolint:errcheck
	response.Created(w, vendor)
}

// Update handles PUT /api/vendors/{id}.
func (c *VendorController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	vendor, err := c.vendors.Find(id)
	if err != nil {
		notFoundOr(w, err, "Vendor")
		return
	}

	var input vendorInput
	if !bindJSON(w, r, &input) {
		return
	}
	if input.TotalSpend.IsNegative() {
		response.ValidationError(w, map[string]string{"total_spend": "The total_spend must not be negative."})
		return
	}

	vendor.Name = input.Name
	vendor.Description = input.Description
	vendor.Category = input.Category
	if input.Status != "" {
		vendor.Status = input.Status
	}
	vendor.TotalSpend = input.TotalSpend

	if err := c.vendors.Update(&vendor); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	cache.Forget(vendorListCacheKey) //nolint:errcheck
	response.Success(w, vendor)
}
