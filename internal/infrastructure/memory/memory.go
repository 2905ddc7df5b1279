// Package memory implementa los puertos de repository sobre contenedores en
// proceso. El estado se pierde al reiniciar; cada almacén protege su contenedor
// con un RWMutex porque Fiber atiende peticiones en varias goroutines.
package memory

import (
	"time"

	"github.com/google/uuid"
)

// Clock fuente de tiempo para los sellos createdAt/updatedAt.
type Clock func() time.Time

// IDGenerator produce identificadores únicos dentro de la vida del contenedor.
type IDGenerator func() string

// NewUUID IDGenerator por defecto (uuid v4, sin riesgo de colisión por
// creaciones consecutivas rápidas).
func NewUUID() string {
	return uuid.New().String()
}
