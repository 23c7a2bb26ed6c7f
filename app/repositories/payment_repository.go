package repositories

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for Payment.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// All returns every payment in insertion order.
func (r *PaymentRepository) All() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("id").Find(&payments).Error
	return payments, err
}

// Find looks up a payment by primary key.
func (r *PaymentRepository) Find(id uint) (models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	return payment, err
}

// Create persists a new payment record.
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// Update persists changes to an existing payment.
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// Delete removes a payment by primary key.
func (r *PaymentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
