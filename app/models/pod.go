package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pod is a cost-tracking subgroup belonging to exactly one company.
type Pod struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null"                     json:"name"`
	Description string          `gorm:"type:text"                             json:"description"`
	CompanyID   uint            `gorm:"not null;index"                        json:"company_id"`
	Budget      decimal.Decimal `gorm:"type:decimal(14,2);not null"           json:"budget"`
	Spent       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"spent"`
	Status      string          `gorm:"size:50;default:active"                json:"status"`
}
