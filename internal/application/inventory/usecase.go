package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/colorstock-api/internal/domain"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// ApplyMovementUseCase registra movimientos de stock de forma transaccional:
// bloquea la fila de la línea (SELECT FOR UPDATE), verifica que una salida no
// deje la cantidad negativa, actualiza la cantidad y anexa el movimiento al
// ledger. Cantidad y ledger se confirman en la misma transacción.
type ApplyMovementUseCase struct {
	txRunner TxRunner
	bus      EventBus
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner, bus EventBus) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, bus: bus}
}

// MovementInput entrada para aplicar un movimiento.
type MovementInput struct {
	InventoryID string
	Quantity    int
	Type        string // IN | OUT
	Notes       string
}

// Apply valida la entrada, ejecuta la transacción y publica los eventos de
// invalidación tras el commit. Devuelve el movimiento registrado.
//
// Reglas: Quantity > 0; Type IN suma, OUT resta; una salida que dejaría la
// cantidad negativa falla con ErrInsufficientStock sin escribir nada.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if in.InventoryID == "" || in.Quantity <= 0 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		// Bloquea la fila: el chequeo de cantidad y la escritura son atómicos
		line, err := invRepo.GetForUpdate(ctx, in.InventoryID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}

		newQuantity := line.Quantity + in.Quantity
		if in.Type == entity.MovementTypeOUT {
			newQuantity = line.Quantity - in.Quantity
		}
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}

		if err := invRepo.UpdateQuantity(ctx, line.ID, newQuantity); err != nil {
			return err
		}

		now := time.Now()
		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			InventoryID:  line.ID,
			Quantity:     in.Quantity,
			Type:         in.Type,
			Notes:        in.Notes,
			MovementDate: now, // timestamp asignado por el servidor
			CreatedAt:    now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: las vistas derivadas (stock, historial) deben refrescarse
	uc.bus.Fire(EventInventoryChanged, created.InventoryID)
	uc.bus.Fire(EventMovementsChanged, created.ID)
	return created, nil
}

// BatchResult resultado de una aplicación secuencial best-effort.
// FailedIndex es el índice del movimiento que falló, o -1 si no hubo fallo.
// Los movimientos aplicados antes del fallo quedan aplicados (sin rollback).
type BatchResult struct {
	Applied     []*entity.StockMovement
	FailedIndex int
	Err         error
}

// ApplyBatch aplica la lista ordenada de movimientos uno por uno y se detiene
// en el primer fallo. Cada movimiento corre en su propia transacción: no hay
// atomicidad de lote.
func (uc *ApplyMovementUseCase) ApplyBatch(ctx context.Context, inputs []MovementInput) BatchResult {
	res := BatchResult{FailedIndex: -1}
	for i, in := range inputs {
		mov, err := uc.Apply(ctx, in)
		if err != nil {
			res.FailedIndex = i
			res.Err = err
			return res
		}
		res.Applied = append(res.Applied, mov)
	}
	return res
}
