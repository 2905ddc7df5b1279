package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/jhoicas/hotel-admin-api/internal/application/auth"
	appbilling "github.com/jhoicas/hotel-admin-api/internal/application/billing"
	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/application/usecase"
	"github.com/jhoicas/hotel-admin-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/hotel-admin-api/internal/infrastructure/pdf"
)

const testToken = "thisisadmin"

// newTestApp levanta la aplicación completa sobre almacenes en memoria.
// apiToken vacío simula un servidor sin configurar.
func newTestApp(t *testing.T, apiToken string) *fiber.App {
	t.Helper()

	customerStore := memory.NewCustomerStore(time.Now, memory.NewUUID)
	userStore := memory.NewUserStore(time.Now, memory.NewUUID)
	serviceStore := memory.NewServiceStore(time.Now, memory.NewUUID)
	invoiceStore := memory.NewInvoiceStore(time.Now, memory.NewUUID)
	roomCatalog := memory.NewRoomCatalog()

	authUC, err := appauth.New(appauth.Config{
		AdminUsername: "admin",
		AdminPassword: "123456",
		APIToken:      apiToken,
	})
	require.NoError(t, err)

	pdfUC := appbilling.NewPDFUseCase(invoiceStore, customerStore, infrapdf.NewMarotoPDFGenerator(), "Hotel Test")

	app := fiber.New()
	Router(app, RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(customerStore),
		UserUC:     usecase.NewUserUseCase(userStore),
		ServiceUC:  usecase.NewServiceUseCase(serviceStore),
		InvoiceUC:  usecase.NewInvoiceUseCase(invoiceStore),
		RoomUC:     usecase.NewRoomUseCase(roomCatalog),
		AuthUC:     authUC,
		InvoicePDF: pdfUC,
		APIToken:   apiToken,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAPITokenMiddleware(t *testing.T) {
	t.Run("sin token configurado responde 500", func(t *testing.T) {
		app := newTestApp(t, "")
		resp := doJSON(t, app, http.MethodGet, "/api/customers", testToken, nil)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "CONFIG", body.Code)
	})

	t.Run("sin header responde 401", func(t *testing.T) {
		app := newTestApp(t, testToken)
		resp := doJSON(t, app, http.MethodGet, "/api/customers", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "MISSING_TOKEN", body.Code)
	})

	t.Run("esquema distinto de Bearer responde 401", func(t *testing.T) {
		app := newTestApp(t, testToken)
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		req.Header.Set("Authorization", "Basic "+testToken)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token incorrecto responde 401", func(t *testing.T) {
		app := newTestApp(t, testToken)
		resp := doJSON(t, app, http.MethodGet, "/api/customers", "otro-token", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "INVALID_TOKEN", body.Code)
	})

	t.Run("token correcto deja pasar", func(t *testing.T) {
		app := newTestApp(t, testToken)
		resp := doJSON(t, app, http.MethodGet, "/api/customers", testToken, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t, testToken)

	req := httptest.NewRequest(http.MethodOptions, "/api/customers", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(t, testToken)

	resp := doJSON(t, app, http.MethodPatch, "/api/customers", testToken, nil)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/rooms/search", "", nil)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t, testToken)

	t.Run("credenciales correctas devuelven el token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth", "", dto.LoginRequest{
			Username: "admin", Password: "123456",
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody[dto.LoginResponse](t, resp)
		assert.Equal(t, testToken, body.Token)
	})

	t.Run("contraseña incorrecta responde 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth", "", dto.LoginRequest{
			Username: "admin", Password: "malamala",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCustomerEndpoints(t *testing.T) {
	app := newTestApp(t, testToken)

	t.Run("crear con email inválido responde 400 nombrando el campo", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/customers", testToken, dto.CreateCustomerRequest{
			Name: "Juan Pérez", Email: "not-an-email", Phone: "+57 300 123 4567",
			Address: "Calle 1 # 2-3", Status: "active",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION", body.Code)
		assert.Contains(t, body.Message, "email")
	})

	t.Run("crear válido responde 201 con id y timestamps", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/customers", testToken, dto.CreateCustomerRequest{
			Name: "Juan Pérez", Email: "juan@example.com", Phone: "+57 300 123 4567",
			Address: "Calle 1 # 2-3", Status: "active",
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody[dto.CustomerResponse](t, resp)
		assert.NotEmpty(t, body.ID)
		assert.False(t, body.CreatedAt.IsZero())
		assert.Equal(t, "Juan Pérez", body.Name)
	})

	t.Run("actualizar sin id responde 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/customers", testToken, dto.UpdateCustomerRequest{})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody[dto.ErrorResponse](t, resp)
		assert.Equal(t, "MISSING_ID", body.Code)
	})

	t.Run("detalle de id inexistente responde 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/customers?id=no-existe", testToken, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestServiceLifecycle(t *testing.T) {
	app := newTestApp(t, testToken)

	price := decimal.NewFromInt(50)
	resp := doJSON(t, app, http.MethodPost, "/api/services", testToken, dto.CreateServiceRequest{
		Name: "Spa", Description: "Masaje relajante de una hora", Price: &price,
		Category: "wellness", Status: "available",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.ServiceResponse](t, resp)
	require.NotEmpty(t, created.ID)

	newPrice := decimal.NewFromInt(60)
	resp = doJSON(t, app, http.MethodPut, "/api/services?id="+created.ID, testToken, dto.UpdateServiceRequest{
		Price: &newPrice,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.ServiceResponse](t, resp)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Spa", updated.Name) // los campos omitidos se conservan

	resp = doJSON(t, app, http.MethodGet, "/api/services?id="+created.ID, testToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/services?id="+created.ID, testToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/services?id="+created.ID, testToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/services?id="+created.ID, testToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoiceEndpoints(t *testing.T) {
	app := newTestApp(t, testToken)

	t.Run("crear deriva subtotal y total en el servidor", func(t *testing.T) {
		tax := decimal.NewFromInt(5)
		resp := doJSON(t, app, http.MethodPost, "/api/invoices", testToken, dto.CreateInvoiceRequest{
			CustomerID:   "c1",
			CustomerName: "Juan Pérez",
			Items: []dto.InvoiceItemRequest{
				{ServiceID: "s1", ServiceName: "Spa", Quantity: 2, Price: decimal.NewFromInt(5), Total: decimal.NewFromInt(10)},
				{ServiceID: "s2", ServiceName: "Cena", Quantity: 1, Price: decimal.NewFromInt(20), Total: decimal.NewFromInt(20)},
			},
			Tax:    &tax,
			Status: "pending",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody[dto.InvoiceResponse](t, resp)
		assert.True(t, body.Subtotal.Equal(decimal.NewFromInt(30)), "subtotal %s", body.Subtotal)
		assert.True(t, body.Total.Equal(decimal.NewFromInt(35)), "total %s", body.Total)
	})

	t.Run("crear sin líneas responde 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices", testToken, dto.CreateInvoiceRequest{
			CustomerID: "c1", CustomerName: "Juan Pérez", Status: "pending",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pdf sin id responde 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/invoices/pdf", testToken, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pdf de factura existente responde application/pdf", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices", testToken, dto.CreateInvoiceRequest{
			CustomerID:   "c1",
			CustomerName: "Juan Pérez",
			Items: []dto.InvoiceItemRequest{
				{ServiceID: "s1", ServiceName: "Spa", Quantity: 1, Price: decimal.NewFromInt(50), Total: decimal.NewFromInt(50)},
			},
			Status: "paid",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		created := decodeBody[dto.InvoiceResponse](t, resp)

		resp = doJSON(t, app, http.MethodGet, "/api/invoices/pdf?id="+created.ID, testToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
	})
}

func TestRoomEndpoints(t *testing.T) {
	app := newTestApp(t, "") // las habitaciones son públicas, sin token configurado

	t.Run("búsqueda sin filtros devuelve el catálogo completo", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/rooms/search", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody[[]dto.RoomResponse](t, resp)
		assert.Len(t, body, 3)
	})

	t.Run("filtro por huéspedes y rango de precio", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/rooms/search?guests=4&priceRange=300-450", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody[[]dto.RoomResponse](t, resp)
		require.Len(t, body, 1)
		assert.Equal(t, "Family Room", body[0].Title)
	})

	t.Run("detalle por id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/rooms/1", "", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("id inexistente responde 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/rooms/99", "", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
