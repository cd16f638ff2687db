package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// ListFilter acota un listado de catálogo. SellerID vacío = catálogo global.
// SortByNewest ordena por fecha de creación descendente (listados de vendedor).
type ListFilter struct {
	SellerID     string
	Skip         int
	Limit        int
	SortByNewest bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create asigna el ID generado por el almacén sobre la entidad recibida.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ListFilter) ([]*entity.Product, error)
	// Count cuenta los productos que cumplen el mismo predicado que List
	// (ignorando Skip/Limit); se usa para calcular el total de páginas.
	Count(filter ListFilter) (int64, error)
}
