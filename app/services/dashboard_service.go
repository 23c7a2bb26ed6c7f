package services

import (
	"fmt"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/pkg/metrics"
	"github.com/shopspring/decimal"
)

// DashboardView is the per-company aggregation returned by the dashboard
// endpoint. Every figure is computed fresh from the store on each call; at
// this system's data volumes a caching layer would cost more in
// invalidation complexity than it saves.
type DashboardView struct {
	Company         models.Company  `json:"company"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	PodCount        int64           `json:"pod_count"`
	VendorCount     int64           `json:"vendor_count"`
	PendingInvoices int64           `json:"pending_invoices"`
}

// DashboardService derives report figures from store snapshots.
type DashboardService struct {
	companies *repositories.CompanyRepository
	pods      *repositories.PodRepository
	vendors   *repositories.VendorRepository
	invoices  *repositories.InvoiceRepository
}

func NewDashboardService(
	companies *repositories.CompanyRepository,
	pods *repositories.PodRepository,
	vendors *repositories.VendorRepository,
	invoices *repositories.InvoiceRepository,
) *DashboardService {
	return &DashboardService{
		companies: companies,
		pods:      pods,
		vendors:   vendors,
		invoices:  invoices,
	}
}

// CompanyDashboard aggregates the dashboard view for one company.
// Returns gorm.ErrRecordNotFound (wrapped) when the company does not exist.
//
// A company with zero budget reports a utilization rate of 0 rather than an
// error; the remaining-budget figure is not clamped and may go negative.
// Vendor count covers the distinct vendors the company has transacted with,
// not the global vendor table.
func (s *DashboardService) CompanyDashboard(companyID uint) (*DashboardView, error) {
	company, err := s.companies.Find(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: company %d: %w", companyID, err)
	}

	podCount, err := s.pods.CountByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pod count: %w", err)
	}

	vendorCount, err := s.vendors.CountDistinctForCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vendor count: %w", err)
	}

	pendingInvoices, err := s.invoices.CountPendingByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pending invoices: %w", err)
	}

	metrics.DashboardBuilds.Inc()

	return &DashboardView{
		Company:         company,
		RemainingBudget: company.Budget.Sub(company.Spent),
		UtilizationRate: utilizationRate(company.Spent, company.Budget),
		PodCount:        podCount,
		VendorCount:     vendorCount,
		PendingInvoices: pendingInvoices,
	}, nil
}

// utilizationRate returns spent/budget as a percentage rounded to one
// decimal place, or 0 when budget is zero.
func utilizationRate(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(1)
}
