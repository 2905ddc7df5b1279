package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-admin-api/internal/application/dto"
	"github.com/jhoicas/hotel-admin-api/internal/application/usecase"
	"github.com/jhoicas/hotel-admin-api/internal/domain"
	"github.com/jhoicas/hotel-admin-api/internal/infrastructure/memory"
)

func newCustomerUC() *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(memory.NewCustomerStore(time.Now, memory.NewUUID))
}

func sampleCustomer() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:    "Ana Gómez",
		Email:   "ana@example.com",
		Phone:   "+57 300 123 4567",
		Address: "Calle 1 # 2-34",
		Status:  "active",
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	uc := newCustomerUC()

	created, err := uc.Create(sampleCustomer())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana Gómez", created.Name)
}

func TestCustomerUseCase_CreateEmailInvalido(t *testing.T) {
	uc := newCustomerUC()
	in := sampleCustomer()
	in.Email = "not-an-email"

	_, err := uc.Create(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email", "el mensaje debe nombrar el campo email")
}

func TestCustomerUseCase_CreateTelefonoCorto(t *testing.T) {
	uc := newCustomerUC()
	in := sampleCustomer()
	in.Phone = "12345"

	_, err := uc.Create(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
}

func TestCustomerUseCase_CreateCamposFaltantes(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.Create(dto.CreateCustomerRequest{Email: "a@b.co"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestCustomerUseCase_CreateStatusFueraDelEnum(t *testing.T) {
	uc := newCustomerUC()
	in := sampleCustomer()
	in.Status = "archived"

	_, err := uc.Create(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestCustomerUseCase_UpdateParcialNoValidaOmitidos(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(sampleCustomer())
	require.NoError(t, err)

	// Solo llega phone; email ni se valida ni se toca.
	phone := "+57 310 555 6677"
	updated, err := uc.Update(created.ID, dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCustomerUseCase_UpdateEmailInvalido(t *testing.T) {
	uc := newCustomerUC()
	created, err := uc.Create(sampleCustomer())
	require.NoError(t, err)

	bad := "sin-arroba"
	_, err = uc.Update(created.ID, dto.UpdateCustomerRequest{Email: &bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_GetByIDInexistente(t *testing.T) {
	uc := newCustomerUC()

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
