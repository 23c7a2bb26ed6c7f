// Package migrations holds the schema history. Each file registers itself
// with the migration runner in an init func; names are timestamp-prefixed so
// the runner applies them in order.
package migrations

import (
	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_users_table", &createUsersTable{})
	migration.Register("20260301000100_create_companies_table", &createCompaniesTable{})
	migration.Register("20260301000200_create_pods_table", &createPodsTable{})
	migration.Register("20260301000300_create_vendors_table", &createVendorsTable{})
	migration.Register("20260301000400_create_invoices_table", &createInvoicesTable{})
	migration.Register("20260301000500_create_payments_table", &createPaymentsTable{})
}

type createUsersTable struct{}

func (createUsersTable) Up(db *gorm.DB) error   { return db.AutoMigrate(&models.User{}) }
func (createUsersTable) Down(db *gorm.DB) error { return db.Migrator().DropTable(&models.User{}) }

type createCompaniesTable struct{}

func (createCompaniesTable) Up(db *gorm.DB) error { return db.AutoMigrate(&models.Company{}) }
func (createCompaniesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Company{})
}

type createPodsTable struct{}

func (createPodsTable) Up(db *gorm.DB) error   { return db.AutoMigrate(&models.Pod{}) }
func (createPodsTable) Down(db *gorm.DB) error { return db.Migrator().DropTable(&models.Pod{}) }

type createVendorsTable struct{}

func (createVendorsTable) Up(db *gorm.DB) error   { return db.AutoMigrate(&models.Vendor{}) }
func (createVendorsTable) Down(db *gorm.DB) error { return db.Migrator().DropTable(&models.Vendor{}) }

type createInvoicesTable struct{}

func (createInvoicesTable) Up(db *gorm.DB) error { return db.AutoMigrate(&models.Invoice{}) }
func (createInvoicesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Invoice{})
}

type createPaymentsTable struct{}

func (createPaymentsTable) Up(db *gorm.DB) error { return db.AutoMigrate(&models.Payment{}) }
func (createPaymentsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Payment{})
}
