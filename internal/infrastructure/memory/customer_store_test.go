package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-admin-api/internal/domain/entity"
	"github.com/jhoicas/hotel-admin-api/internal/infrastructure/memory"
)

// fakeClock reloj controlable para verificar los sellos de tiempo.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newCustomer(name string) *entity.Customer {
	return &entity.Customer{
		Name:    name,
		Email:   name + "@hotel.test",
		Phone:   "+57 300 123 4567",
		Address: "Calle 1 # 2-34",
		Status:  entity.CustomerStatusActive,
	}
}

func TestCustomerStore_CreateSellaIDYTimestamps(t *testing.T) {
	clock := newFakeClock()
	store := memory.NewCustomerStore(clock.Now, memory.NewUUID)

	created, err := store.Create(newCustomer("Ana"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt,
		"al crear, createdAt debe igualar updatedAt")
}

func TestCustomerStore_IDsUnicos(t *testing.T) {
	clock := newFakeClock()
	store := memory.NewCustomerStore(clock.Now, memory.NewUUID)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created, err := store.Create(newCustomer("Cliente"))
		require.NoError(t, err)
		require.False(t, seen[created.ID], "id repetido: %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCustomerStore_ListConservaOrdenDeInsercion(t *testing.T) {
	clock := newFakeClock()
	store := memory.NewCustomerStore(clock.Now, memory.NewUUID)

	names := []string{"Ana", "Bruno", "Carla"}
	for _, n := range names {
		_, err := store.Create(newCustomer(n))
		require.NoError(t, err)
	}

	first, err := store.List()
	require.NoError(t, err)
	require.Len(t, first, 3)
	for i, c := range first {
		assert.Equal(t, names[i], c.Name)
	}

	// Idempotencia: sin mutaciones, listados repetidos devuelven lo mismo.
	second, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCustomerStore_UpdateConservaIDYCreatedAt(t *testing.T) {
	clock := newFakeClock()
	store := memory.NewCustomerStore(clock.Now, memory.NewUUID)

	created, err := store.Create(newCustomer("Ana"))
	require.NoError(t, err)
	origID, origCreated := created.ID, created.CreatedAt

	clock.Advance(time.Minute)
	merged := *created
	merged.Phone = "+57 301 000 0000"
	updated, err := store.Update(created.ID, &merged)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, origID, updated.ID)
	assert.Equal(t, origCreated, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(origCreated),
		"updatedAt debe avanzar en cada actualización")
	assert.Equal(t, "+57 301 000 0000", updated.Phone)
	assert.Equal(t, "Ana", updated.Name, "los campos no tocados se conservan")
}

func TestCustomerStore_UpdateInexistente(t *testing.T) {
	store := memory.NewCustomerStore(time.Now, memory.NewUUID)

	updated, err := store.Update("no-existe", newCustomer("Nadie"))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCustomerStore_DeleteDosVeces(t *testing.T) {
	store := memory.NewCustomerStore(time.Now, memory.NewUUID)

	created, err := store.Create(newCustomer("Ana"))
	require.NoError(t, err)

	removed, err := store.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed, "la primera eliminación debe ocurrir")

	removed, err = store.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "la segunda eliminación debe señalar false")

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomerStore_GetByIDInexistente(t *testing.T) {
	store := memory.NewCustomerStore(time.Now, memory.NewUUID)

	got, err := store.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}
