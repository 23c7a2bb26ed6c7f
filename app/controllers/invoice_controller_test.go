package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/pkg/testkit"
)

// seedCompanyAndVendor inserts one company and one vendor directly.
func seedCompanyAndVendor(t *testing.T, db *gorm.DB) (models.Company, models.Vendor) {
	t.Helper()

	company := models.Company{Name: "Acme", Budget: decimal.NewFromInt(1000)}
	require.NoError(t, db.Create(&company).Error)

	vendor := models.Vendor{Name: "CloudCo"}
	require.NoError(t, db.Create(&vendor).Error)

	return company, vendor
}

func invoiceBody(companyID, vendorID uint, number string) map[string]interface{} {
	return map[string]interface{}{
		"company_id": companyID,
		"vendor_id":  vendorID,
		"number":     number,
		"amount":     150.50,
		"issue_date": "2026-02-01",
		"due_date":   "2026-03-01",
	}
}

func TestInvoiceCreate(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(company.ID, vendor.ID, "INV-001"))
	require.Equal(t, http.StatusCreated, code)

	var created models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "INV-001", created.Number)
	assert.Equal(t, models.InvoicePending, created.Status, "status defaults to pending")
	assert.True(t, created.Amount.Equal(decimal.NewFromFloat(150.50)))
}

func TestInvoiceNumberUniquePerCompany(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	code, _ := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(company.ID, vendor.ID, "INV-001"))
	require.Equal(t, http.StatusCreated, code)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(company.ID, vendor.ID, "INV-001"))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Invoice number already exists for this company", env.Message)

	// The same number under a different company is allowed.
	other := models.Company{Name: "Globex", Budget: decimal.NewFromInt(1)}
	require.NoError(t, db.Create(&other).Error)

	code, _ = testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(other.ID, vendor.ID, "INV-001"))
	assert.Equal(t, http.StatusCreated, code)
}

func TestInvoiceDueBeforeIssueRejected(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	body := invoiceBody(company.ID, vendor.ID, "INV-001")
	body["issue_date"] = "2026-03-01"
	body["due_date"] = "2026-02-01"

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token, body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "due_date")
}

func TestInvoiceUnknownReferences(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(999999, vendor.ID, "INV-001"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Unknown company", env.Message)

	code, env = testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(company.ID, 999999, "INV-001"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Unknown vendor", env.Message)
}

func TestInvoiceDeleteAdminOnly(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, userToken := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	_, adminToken := testkit.SeedUser(t, db, "admin@example.com", models.RoleAdmin)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", userToken,
		invoiceBody(company.ID, vendor.ID, "INV-001"))
	require.Equal(t, http.StatusCreated, code)

	var created models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &created))
	target := fmt.Sprintf("/api/invoices/%d", created.ID)

	code, env = testkit.DoJSON(t, h, http.MethodDelete, target, userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Insufficient permissions", env.Message)

	code, env = testkit.DoJSON(t, h, http.MethodDelete, target, adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Invoice deleted", env.Message)

	code, _ = testkit.DoJSON(t, h, http.MethodGet, target, userToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
