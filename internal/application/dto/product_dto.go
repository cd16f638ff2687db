package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o editar un producto (mismo esquema en ambos casos).
type ProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=255"`
	Brand        string          `json:"brand" validate:"required,min=1,max=255"`
	Price        decimal.Decimal `json:"price" validate:"min=0"`
	Quantity     int             `json:"quantity" validate:"min=1"`
	Category     string          `json:"category" validate:"required"`
	Image        string          `json:"image"`
	FreeShipping bool            `json:"freeShipping"`
	Description  string          `json:"description" validate:"required,min=10,max=1000"`
}

// ProductResponse salida completa de un producto (detalle).
type ProductResponse struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Category     string          `json:"category"`
	Image        string          `json:"image,omitempty"`
	FreeShipping bool            `json:"freeShipping"`
	Description  string          `json:"description"`
	SellerID     string          `json:"sellerId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductCard proyección de catálogo: lo que ven los listados, con la descripción
// recortada a sus primeros 200 caracteres.
type ProductCard struct {
	ID               string          `json:"_id"`
	Name             string          `json:"name"`
	Image            string          `json:"image,omitempty"`
	Brand            string          `json:"brand"`
	Price            decimal.Decimal `json:"price"`
	ShortDescription string          `json:"shortDescription"`
}

// ProductListResponse listado paginado de catálogo.
type ProductListResponse struct {
	Message     string        `json:"message"`
	ProductList []ProductCard `json:"productList"`
	TotalPage   int           `json:"totalPage"`
}

// ProductDetailResponse detalle de un producto.
type ProductDetailResponse struct {
	Message        string          `json:"message"`
	ProductDetails ProductResponse `json:"productDetails"`
}
