package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/pkg/testkit"
)

func paymentBody(companyID, vendorID uint) map[string]interface{} {
	return map[string]interface{}{
		"company_id":   companyID,
		"vendor_id":    vendorID,
		"amount":       500,
		"payment_date": "2026-02-15",
		"method":       "wire_transfer",
	}
}

func TestPaymentCreate(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/payments", token,
		paymentBody(company.ID, vendor.ID))
	require.Equal(t, http.StatusCreated, code)

	var created models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.PaymentPending, created.Status, "status defaults to pending")
	assert.Nil(t, created.InvoiceID)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(500)))
}

func TestPaymentWithInvoice(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/invoices", token,
		invoiceBody(company.ID, vendor.ID, "INV-001"))
	require.Equal(t, http.StatusCreated, code)
	var invoice models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &invoice))

	body := paymentBody(company.ID, vendor.ID)
	body["invoice_id"] = invoice.ID
	code, env = testkit.DoJSON(t, h, http.MethodPost, "/api/payments", token, body)
	require.Equal(t, http.StatusCreated, code)

	var created models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.InvoiceID)
	assert.Equal(t, invoice.ID, *created.InvoiceID)
}

func TestPaymentUnknownInvoice(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	body := paymentBody(company.ID, vendor.ID)
	body["invoice_id"] = 999999
	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/payments", token, body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Unknown invoice", env.Message)
}

func TestPaymentBadMethodRejected(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, token := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	company, vendor := seedCompanyAndVendor(t, db)

	body := paymentBody(company.ID, vendor.ID)
	body["method"] = "barter"
	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/payments", token, body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "method")
}

func TestPaymentDeleteAdminOnly(t *testing.T) {
	db := testkit.NewDB(t)
	h := testkit.NewHandler(t, db)
	_, userToken := testkit.SeedUser(t, db, "user@example.com", models.RoleUser)
	_, adminToken := testkit.SeedUser(t, db, "admin@example.com", models.RoleAdmin)
	company, vendor := seedCompanyAndVendor(t, db)

	code, env := testkit.DoJSON(t, h, http.MethodPost, "/api/payments", userToken,
		paymentBody(company.ID, vendor.ID))
	require.Equal(t, http.StatusCreated, code)

	var created models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &created))
	target := fmt.Sprintf("/api/payments/%d", created.ID)

	code, _ = testkit.DoJSON(t, h, http.MethodDelete, target, userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = testkit.DoJSON(t, h, http.MethodDelete, target, adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Payment deleted", env.Message)
}
