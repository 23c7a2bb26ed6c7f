// Package routes wires controllers onto the router. Everything except
// login, register, health and metrics sits behind the auth gate.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/fintrack/app/controllers"
	"github.com/shashiranjanraj/fintrack/app/models"
	"github.com/shashiranjanraj/fintrack/app/repositories"
	"github.com/shashiranjanraj/fintrack/app/services"
	"github.com/shashiranjanraj/fintrack/pkg/metrics"
	"github.com/shashiranjanraj/fintrack/pkg/middleware"
	"github.com/shashiranjanraj/fintrack/pkg/rbac"
	"github.com/shashiranjanraj/fintrack/pkg/response"
	"github.com/shashiranjanraj/fintrack/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI mounts every route onto r, backed by the given database.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	companies := repositories.NewCompanyRepository(db)
	pods := repositories.NewPodRepository(db)
	vendors := repositories.NewVendorRepository(db)
	invoices := repositories.NewInvoiceRepository(db)
	payments := repositories.NewPaymentRepository(db)

	authController := controllers.NewAuthController(
		services.NewAuthService(users))
	companyController := controllers.NewCompanyController(companies)
	podController := controllers.NewPodController(pods, companies)
	vendorController := controllers.NewVendorController(vendors)
	invoiceController := controllers.NewInvoiceController(invoices, companies, vendors)
	paymentController := controllers.NewPaymentController(payments, companies, vendors, invoices)
	dashboardController := controllers.NewDashboardController(
		services.NewDashboardService(companies, pods, vendors, invoices))

	r.Get("/health", "health", controllers.Health)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Post("/auth/login", "auth.login", authController.Login)
	api.Post("/auth/register", "auth.register", authController.Register)

	protected := api.Group("", middleware.Auth)
	protected.Get("/auth/profile", "auth.profile", authController.Profile)

	protected.Get("/companies", "companies.index", companyController.Index)
	protected.Post("/companies", "companies.store", companyController.Store)
	protected.Get("/companies/{id}", "companies.show", companyController.Show)
	protected.Put("/companies/{id}", "companies.update", companyController.Update)

	protected.Get("/pods", "pods.index", podController.Index)
	protected.Post("/pods", "pods.store", podController.Store)
	protected.Get("/pods/{id}", "pods.show", podController.Show)
	protected.Put("/pods/{id}", "pods.update", podController.Update)

	protected.Get("/vendors", "vendors.index", vendorController.Index)
	protected.Post("/vendors", "vendors.store", vendorController.Store)
	protected.Get("/vendors/{id}", "vendors.show", vendorController.Show)
	protected.Put("/vendors/{id}", "vendors.update", vendorController.Update)

	protected.Get("/invoices", "invoices.index", invoiceController.Index)
	protected.Post("/invoices", "invoices.store", invoiceController.Store)
	protected.Get("/invoices/{id}", "invoices.show", invoiceController.Show)
	protected.Put("/invoices/{id}", "invoices.update", invoiceController.Update)
	protected.Delete("/invoices/{id}", "invoices.destroy", invoiceController.Destroy,
		rbac.HasRole(models.RoleAdmin))

	protected.Get("/payments", "payments.index", paymentController.Index)
	protected.Post("/payments", "payments.store", paymentController.Store)
	protected.Get("/payments/{id}", "payments.show", paymentController.Show)
	protected.Put("/payments/{id}", "payments.update", paymentController.Update)
	protected.Delete("/payments/{id}", "payments.destroy", paymentController.Destroy,
		rbac.HasRole(models.RoleAdmin))

	protected.Get("/dashboard/company/{id}", "dashboard.company", dashboardController.Company)

	// Unmatched routes answer with the endpoint catalogue.
	r.NotFound(func(w http.ResponseWriter, req *http.Request, endpoints []string) {
		response.NotFoundCatalogue(w, endpoints)
	})
}
