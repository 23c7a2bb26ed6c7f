package seeders

import (
	"time"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/pkg/auth"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register(&userSeeder{})
	Register(&demoDataSeeder{})
}

// userSeeder creates the default admin and a regular user.
type userSeeder struct{}

func (userSeeder) Name() string { return "users" }

func (userSeeder) Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminHash, err := auth.HashPassword("admin12345")
	if err != nil {
		return err
	}
	userHash, err := auth.HashPassword("user12345")
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Admin", Email: "admin@fintrack.local", Password: adminHash, Role: models.RoleAdmin},
		{Name: "Demo User", Email: "demo@fintrack.local", Password: userHash, Role: models.RoleUser},
	}
	return db.Create(&users).Error
}

// demoDataSeeder creates a small connected graph of companies, pods,
// vendors, invoices and payments so the dashboard has something to show.
type demoDataSeeder struct{}

func (demoDataSeeder) Name() string { return "demo data" }

func (demoDataSeeder) Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	acme := models.Company{
		Name:        "Acme Corp",
		Description: "Flagship demo company",
		Status:      models.StatusActive,
		Budget:      decimal.NewFromInt(100000),
		Spent:       decimal.NewFromInt(25000),
	}
	globex := models.Company{
		Name:   "Globex",
		Status: models.StatusActive,
		Budget: decimal.NewFromInt(50000),
		Spent:  decimal.NewFromInt(48000),
	}
	if err := db.Create(&acme).Error; err != nil {
		return err
	}
	if err := db.Create(&globex).Error; err != nil {
		return err
	}

	pods := []models.Pod{
		{Name: "Platform", CompanyID: acme.ID, Budget: decimal.NewFromInt(60000), Spent: decimal.NewFromInt(15000), Status: models.StatusActive},
		{Name: "Growth", CompanyID: acme.ID, Budget: decimal.NewFromInt(40000), Spent: decimal.NewFromInt(10000), Status: models.StatusActive},
		{Name: "Ops", CompanyID: globex.ID, Budget: decimal.NewFromInt(50000), Spent: decimal.NewFromInt(48000), Status: models.StatusActive},
	}
	if err := db.Create(&pods).Error; err != nil {
		return err
	}

	cloudco := models.Vendor{Name: "CloudCo", Category: "infrastructure", Status: models.StatusActive, TotalSpend: decimal.NewFromInt(18000)}
	designly := models.Vendor{Name: "Designly", Category: "services", Status: models.StatusActive, TotalSpend: decimal.NewFromInt(7000)}
	if err := db.Create(&cloudco).Error; err != nil {
		return err
	}
	if err := db.Create(&designly).Error; err != nil {
		return err
	}

	issue := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{CompanyID: acme.ID, VendorID: cloudco.ID, Number: "INV-001", Amount: decimal.NewFromInt(12000), Status: models.InvoicePaid, IssueDate: issue, DueDate: issue.AddDate(0, 1, 0)},
		{CompanyID: acme.ID, VendorID: designly.ID, Number: "INV-002", Amount: decimal.NewFromInt(7000), Status: models.InvoicePending, IssueDate: issue, DueDate: issue.AddDate(0, 1, 0)},
		{CompanyID: globex.ID, VendorID: cloudco.ID, Number: "INV-001", Amount: decimal.NewFromInt(6000), Status: models.InvoiceOverdue, IssueDate: issue, DueDate: issue.AddDate(0, 0, 14)},
	}
	if err := db.Create(&invoices).Error; err != nil {
		return err
	}

	payments := []models.Payment{
		{CompanyID: acme.ID, VendorID: cloudco.ID, InvoiceID: &invoices[0].ID, Amount: decimal.NewFromInt(12000), Status: models.PaymentCompleted, PaymentDate: issue.AddDate(0, 0, 20), Method: models.MethodWireTransfer},
		{CompanyID: globex.ID, VendorID: cloudco.ID, Amount: decimal.NewFromInt(6000), Status: models.PaymentPending, PaymentDate: issue.AddDate(0, 0, 25), Method: models.MethodCard},
	}
	return db.Create(&payments).Error
}
