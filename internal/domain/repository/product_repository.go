package repository

import "github.com/tu-usuario/stock-control/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error) // SELECT FOR UPDATE, solo dentro de una tx
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error) // snapshot completo para reportes
	Delete(id string) error
}
