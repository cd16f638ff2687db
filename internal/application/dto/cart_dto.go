package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest entrada para agregar un producto al carrito.
type AddCartItemRequest struct {
	ProductID       string `json:"productId" validate:"required"`
	OrderedQuantity int    `json:"orderedQuantity" validate:"min=1"`
}

// CartProduct instantánea del producto dentro de un item del carrito (al momento
// de la lectura, no del alta).
type CartProduct struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
}

// CartItemResponse item del carrito unido con su producto.
type CartItemResponse struct {
	ID              string      `json:"_id"`
	OrderedQuantity int         `json:"orderedQuantity"`
	Product         CartProduct `json:"product"`
}

// CartListResponse listado del carrito del comprador.
type CartListResponse struct {
	Message   string             `json:"message"`
	CartItems []CartItemResponse `json:"cartItems"`
}

// CartCountResponse total de items del carrito.
type CartCountResponse struct {
	Message       string `json:"message"`
	TotalCartItem int64  `json:"totalCartItem"`
}
