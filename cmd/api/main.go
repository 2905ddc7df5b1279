package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appauth "github.com/jhoicas/hotel-admin-api/internal/application/auth"
	appbilling "github.com/jhoicas/hotel-admin-api/internal/application/billing"
	"github.com/jhoicas/hotel-admin-api/internal/application/usecase"
	"github.com/jhoicas/hotel-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/hotel-admin-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/hotel-admin-api/internal/interfaces/http"
	"github.com/jhoicas/hotel-admin-api/pkg/config"
	"github.com/jhoicas/hotel-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.API.Token == "" {
		log.Warn().Msg("API_TOKEN no configurado: los recursos protegidos responderán 500")
	}

	// La consola espera los montos como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	// Almacenes en memoria: el estado vive lo que viva el proceso.
	customerStore := memory.NewCustomerStore(time.Now, memory.NewUUID)
	userStore := memory.NewUserStore(time.Now, memory.NewUUID)
	serviceStore := memory.NewServiceStore(time.Now, memory.NewUUID)
	invoiceStore := memory.NewInvoiceStore(time.Now, memory.NewUUID)
	roomCatalog := memory.NewRoomCatalog()

	customerUC := usecase.NewCustomerUseCase(customerStore)
	userUC := usecase.NewUserUseCase(userStore)
	serviceUC := usecase.NewServiceUseCase(serviceStore)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceStore)
	roomUC := usecase.NewRoomUseCase(roomCatalog)

	authUC, err := appauth.New(appauth.Config{
		AdminUsername: cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		APIToken:      cfg.API.Token,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar auth")
	}

	// PDF: representación imprimible de la factura para el huésped
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := appbilling.NewPDFUseCase(invoiceStore, customerStore, pdfGenerator, cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		UserUC:     userUC,
		ServiceUC:  serviceUC,
		InvoiceUC:  invoiceUC,
		RoomUC:     roomUC,
		AuthUC:     authUC,
		InvoicePDF: invoicePDFUC,
		APIToken:   cfg.API.Token,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
