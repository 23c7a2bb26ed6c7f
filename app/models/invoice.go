package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice statuses.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Invoice is a bill from a vendor to a company. Number is the vendor's
// display string, unique per company (two companies may both hold an
// "INV-001" but one company may not hold two).
type Invoice struct {
	gorm.Model
	CompanyID   uint            `gorm:"not null;index;uniqueIndex:idx_company_invoice_number" json:"company_id"`
	VendorID    uint            `gorm:"not null;index"                                        json:"vendor_id"`
	Number      string          `gorm:"size:100;not null;uniqueIndex:idx_company_invoice_number" json:"number"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"                           json:"amount"`
	Status      string          `gorm:"size:50;default:pending"                               json:"status"`
	IssueDate   time.Time       `gorm:"not null"                                              json:"issue_date"`
	DueDate     time.Time       `gorm:"not null"                                              json:"due_date"` // always >= IssueDate
	Description string          `gorm:"type:text"                                             json:"description"`
}
