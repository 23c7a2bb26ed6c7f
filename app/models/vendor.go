package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vendor is an external supplier that invoices companies and receives
// payments. TotalSpend is the cumulative amount paid across all companies.
type Vendor struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null;index"               json:"name"`
	Description string          `gorm:"type:text"                             json:"description"`
	Category    string          `gorm:"size:100"                              json:"category"`
	Status      string          `gorm:"size:50;default:active"                json:"status"`
	TotalSpend  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_spend"`
}
