package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías permitidas para Product (enum cerrado).
var ProductCategories = []string{
	"grocery",
	"clothing",
	"kids",
	"stationery",
	"kitchen",
	"furniture",
	"electronics",
	"electrical",
	"sports",
}

// Product representa una entrada del catálogo. Quantity es el stock disponible;
// SellerID referencia al User vendedor que lo creó (relación de propiedad, no FK fuerte).
type Product struct {
	ID           string
	Name         string
	Brand        string
	Price        decimal.Decimal // >= 0
	Quantity     int             // stock disponible, >= 1
	Category     string          // uno de ProductCategories
	Image        string          // opcional
	FreeShipping bool
	Description  string
	SellerID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSnapshot son los campos del producto que acompañan a un item del carrito
// en los listados (proyección de lectura, no una entidad persistida).
type ProductSnapshot struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Image    string
	Category string
	Brand    string
}

// IsValidCategory indica si la categoría pertenece al enum cerrado.
func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
