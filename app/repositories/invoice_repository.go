package repositories

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for Invoice.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// All returns every invoice in insertion order.
func (r *InvoiceRepository) All() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("id").Find(&invoices).Error
	return invoices, err
}

// Find looks up an invoice by primary key.
func (r *InvoiceRepository) Find(id uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, id).Error
	return invoice, err
}

// NumberExists reports whether the company already holds an invoice with
// the given display number.
func (r *InvoiceRepository) NumberExists(companyID uint, number string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("company_id = ? AND number = ?", companyID, number).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new invoice record.
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// Update persists changes to an existing invoice.
func (r *InvoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

// Delete removes an invoice by primary key.
func (r *InvoiceRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPendingByCompany returns the company's pending invoice count.
func (r *InvoiceRepository) CountPendingByCompany(companyID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Invoice{}).
		Where("company_id = ? AND status = ?", companyID, models.InvoicePending).
		Count(&n).Error
	return n, err
}
