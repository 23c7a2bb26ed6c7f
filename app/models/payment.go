package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment methods.
const (
	MethodWireTransfer = "wire_transfer"
	MethodCard         = "card"
	MethodOther        = "other"
)

// Payment is money sent from a company to a vendor, optionally settling a
// specific invoice.
type Payment struct {
	gorm.Model
	CompanyID   uint            `gorm:"not null;index"              json:"company_id"`
	VendorID    uint            `gorm:"not null;index"              json:"vendor_id"`
	InvoiceID   *uint           `gorm:"index"                       json:"invoice_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Status      string          `gorm:"size:50;default:pending"     json:"status"`
	PaymentDate time.Time       `gorm:"not null"                    json:"payment_date"`
	Method      string          `gorm:"size:50;not null"            json:"method"`
	Description string          `gorm:"type:text"                   json:"description"`
}
