// Package models contains the gorm entities for the fintrack domain:
// users, companies, pods, vendors, invoices and payments.
//
// All money columns use shopspring decimal with scale 2, stored as
// decimal(14,2). Primary keys come from the database autoincrement sequence
// and are never reused, even after deletions.
package models

import "github.com/shopspring/decimal"

func init() {
	// Budgets and amounts serialise as JSON numbers, matching what the SPA
	// frontend expects.
	decimal.MarshalJSONWithoutQuotes = true
}
