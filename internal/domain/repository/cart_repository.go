package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para CartItem (DIP).
// Create asigna el ID generado por el almacén sobre la entidad recibida.
type CartRepository interface {
	Create(item *entity.CartItem) error
	GetByID(id string) (*entity.CartItem, error)
	// GetByBuyerAndProduct resuelve el par único (buyerId, productId); (nil, nil) si no existe.
	GetByBuyerAndProduct(buyerID, productID string) (*entity.CartItem, error)
	Delete(id string) error
	// DeleteByBuyer vacía el carrito completo; no es error que ya esté vacío.
	DeleteByBuyer(buyerID string) error
	// ListWithProduct devuelve los items del comprador unidos con la instantánea
	// actual de su producto. Items cuyo producto ya no existe se omiten.
	ListWithProduct(buyerID string) ([]*entity.CartDetail, error)
	CountByBuyer(buyerID string) (int64, error)
}
