package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftcourier/billing-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PDFUC      *billing.PDFUseCase
	ImportUC   *billing.ImportUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Invoices. The static item-sheet routes are registered before the
	// parameterized ones so "items" is never read as an :id.
	invoices := api.Group("/invoices")
	importHandler := NewImportHandler(deps.ImportUC)
	invoices.Post("/items/import", importHandler.ImportItems)
	invoices.Get("/items/template", importHandler.Template)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Patch("/:id/status", invoiceHandler.SetPaymentStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
