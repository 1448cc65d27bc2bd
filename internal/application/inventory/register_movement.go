// Package inventory contiene el protocolo de mutación de stock: registrar
// un movimiento y ajustar la cantidad del producto en una sola transacción.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-control/internal/application/dto"
	"github.com/tu-usuario/stock-control/internal/domain"
	"github.com/tu-usuario/stock-control/internal/domain/entity"
	"github.com/tu-usuario/stock-control/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma
// transaccional (entry/exit) con bloqueo de fila (SELECT FOR UPDATE) sobre
// el producto y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterMovement valida la entrada, bloquea la fila del producto, aplica
// entrada (suma) o salida (resta, con verificación de stock suficiente) y
// persiste el movimiento. Commit si todo ok, Rollback si algo falla.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !entity.ValidMovementType(in.Type) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la tx: corta rápido los IDs inválidos.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar condiciones de carrera
		// entre movimientos concurrentes del mismo producto.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newQty := locked.Quantity + in.Quantity
		if in.Type == entity.MovementTypeExit {
			if locked.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = locked.Quantity - in.Quantity
		}
		if err := productRepo.UpdateQuantity(in.ProductID, newQty); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(movement), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
