package routes

import (
	"github.com/gofiber/fiber/v2"

	"stockbook-backend/controllers"
	"stockbook-backend/middlewares"
)

// Deps bundles the controllers the route table needs.
type Deps struct {
	Stocks    *controllers.StockController
	Suppliers *controllers.SupplierController
	Purchases *controllers.PurchaseController
	Sales     *controllers.SaleController
	Reports   *controllers.ReportController
}

// Register wires all HTTP routes.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Stocks
	protected.Post("/stock", d.Stocks.Create)
	protected.Get("/stocks", d.Stocks.List)
	protected.Get("/stock/:id", d.Stocks.Get)
	protected.Put("/stock/:id", d.Stocks.Update)
	protected.Delete("/stock/:id", d.Stocks.Delete)

	// Suppliers
	protected.Post("/supplier", d.Suppliers.Create)
	protected.Get("/suppliers", d.Suppliers.List)
	protected.Get("/supplier/:id", d.Suppliers.Get)
	protected.Put("/supplier/:id", d.Suppliers.Update)
	protected.Delete("/supplier/:id", d.Suppliers.Delete)

	// Purchase bills
	protected.Post("/purchase", d.Purchases.Create)
	protected.Get("/purchases", d.Purchases.List)
	protected.Get("/purchase/:billno", d.Purchases.Get)
	protected.Put("/purchase/:billno/details", d.Purchases.UpdateDetails)
	protected.Delete("/purchase/:billno", d.Purchases.Delete)

	// Sale bills
	protected.Post("/sale", d.Sales.Create)
	protected.Get("/sales", d.Sales.List)
	protected.Get("/sale/:billno", d.Sales.Get)
	protected.Put("/sale/:billno/details", d.Sales.UpdateDetails)
	protected.Delete("/sale/:billno", d.Sales.Delete)

	// Reports
	protected.Get("/reports/balance", d.Reports.Balance)
	protected.Get("/reports/inventory", d.Reports.Inventory)
	protected.Get("/dashboard", d.Reports.Dashboard)
}
