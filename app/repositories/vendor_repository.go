package repositories

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"gorm.io/gorm"
)

// VendorRepository handles database operations for Vendor.
type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// All returns every vendor in insertion order.
func (r *VendorRepository) All() ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.Order("id").Find(&vendors).Error
	return vendors, err
}

// Find looks up a vendor by primary key.
func (r *VendorRepository) Find(id uint) (models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, id).Error
	return vendor, err
}

// Exists reports whether a vendor with the given id exists.
func (r *VendorRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vendor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create persists a new vendor record.
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// Update persists changes to an existing vendor.
func (r *VendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

// CountDistinctForCompany returns how many distinct vendors the company has
// transacted with, via either invoices or payments.
func (r *VendorRepository) CountDistinctForCompany(companyID uint) (int64, error) {
	var ids []uint

	err := r.db.Model(&models.Invoice{}).
		Where("company_id = ?", companyID).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return 0, err
	}

	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}

	ids = ids[:0]
	err = r.db.Model(&models.Payment{}).
		Where("company_id = ?", companyID).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		seen[id] = true
	}

	return int64(len(seen)), nil
}

// Delete removes a vendor, rejecting the delete while any invoice or payment
// still references it. Not exposed over HTTP; used by the CLI.
func (r *VendorRepository) Delete(id uint) error {
	for _, m := range []interface{}{&models.Invoice{}, &models.Payment{}} {
		var count int64
		if err := r.db.Model(m).Where("vendor_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrReferenced
		}
	}

	res := r.db.Delete(&models.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
