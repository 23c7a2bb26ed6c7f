package repositories

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for Company.
type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// All returns every company in insertion order.
func (r *CompanyRepository) All() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("id").Find(&companies).Error
	return companies, err
}

// Find looks up a company by primary key.
func (r *CompanyRepository) Find(id uint) (models.Company, error) {
	var company models.Company
	err := r.db.First(&company, id).Error
	return company, err
}

// Exists reports whether a company with the given id exists.
func (r *CompanyRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create persists a new company record.
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// Update persists changes to an existing company.
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete removes a company, rejecting the delete while any pod, invoice or
// payment still references it. Not exposed over HTTP; used by the CLI.
func (r *CompanyRepository) Delete(id uint) error {
	for _, m := range []interface{}{&models.Pod{}, &models.Invoice{}, &models.Payment{}} {
		var count int64
		if err := r.db.Model(m).Where("company_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrReferenced
		}
	}

	res := r.db.Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
