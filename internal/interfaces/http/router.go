package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/jhoicas/hotel-admin-api/internal/application/auth"
	appbilling "github.com/jhoicas/hotel-admin-api/internal/application/billing"
	"github.com/jhoicas/hotel-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	ServiceUC  *usecase.ServiceUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	RoomUC     *usecase.RoomUseCase
	AuthUC     *appauth.UseCase
	InvoicePDF *appbilling.PDFUseCase
	APIToken   string
}

// Router registra las rutas del API. Cada recurso de la consola expone un solo
// path con el id como query parameter; el catch-all final responde 405 a los
// verbos fuera del contrato.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", CORSMiddleware())

	// Login de la consola (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Login)
	api.All("/auth", methodNotAllowed)

	// Catálogo de habitaciones para la web pública (sin token)
	rooms := api.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Get("/search", roomHandler.Search)
	rooms.All("/search", methodNotAllowed)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.All("/:id", methodNotAllowed)

	// Recursos de la consola (requieren Bearer token)
	protected := api.Group("/", APITokenMiddleware(deps.APIToken))

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.Get)
	customers.Post("/", customerHandler.Create)
	customers.Put("/", customerHandler.Update)
	customers.Delete("/", customerHandler.Delete)
	customers.All("/", methodNotAllowed)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.Get)
	users.Post("/", userHandler.Create)
	users.Put("/", userHandler.Update)
	users.Delete("/", userHandler.Delete)
	users.All("/", methodNotAllowed)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.Get)
	services.Post("/", serviceHandler.Create)
	services.Put("/", serviceHandler.Update)
	services.Delete("/", serviceHandler.Delete)
	services.All("/", methodNotAllowed)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/pdf", invoiceHandler.GetPDF)
	invoices.Get("/", invoiceHandler.Get)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/", invoiceHandler.Update)
	invoices.Delete("/", invoiceHandler.Delete)
	invoices.All("/", methodNotAllowed)
}
