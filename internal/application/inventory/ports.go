package inventory

import (
	"context"

	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de cantidad y
// el registro del movimiento se confirmen (o deshagan) juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// EventBus publica eventos de dominio tras un commit exitoso.
// Lo satisface pkg/event.Bus.
type EventBus interface {
	Fire(event string, payload interface{})
}

// Eventos publicados por el motor de movimientos. Los suscriptores (caché de
// vistas) invalidan su estado derivado al recibirlos.
const (
	EventInventoryChanged = "inventory.changed"
	EventMovementsChanged = "movements.changed"
)
