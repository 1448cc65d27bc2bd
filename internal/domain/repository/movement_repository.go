package repository

import "github.com/tu-usuario/stock-control/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock (DIP).
// Los movimientos son inmutables: solo alta, lectura y borrado.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	List(limit, offset int) ([]*entity.Movement, error)
	ListAll() ([]*entity.Movement, error) // snapshot completo para el motor de reportes
	Delete(id string) error
}
