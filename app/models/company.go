package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Company statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Company is the top-level cost-tracking entity. Pods, invoices and
// payments all hang off a company.
type Company struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null;index"          json:"name"`
	Description string          `gorm:"type:text"                        json:"description"`
	Status      string          `gorm:"size:50;default:active"           json:"status"`
	Budget      decimal.Decimal `gorm:"type:decimal(14,2);not null"      json:"budget"`
	// Spent may exceed Budget; over-budget companies simply show a
	// negative remaining figure on the dashboard.
	Spent decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"spent"`
}
