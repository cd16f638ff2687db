package http

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// LocalProduct guarda el producto ya cargado por la guardia de propiedad para que el
// handler no lo recargue.
const LocalProduct = "product"

// productLoader contrato mínimo de la guardia de propiedad (lo implementa ProductRepository).
type productLoader interface {
	GetByID(id string) (*entity.Product, error)
}

// RequireValidID valida que el parámetro :id sea un ObjectID sintácticamente válido
// antes de cualquier consulta al almacén. Un id malformado es 400, nunca 404.
func RequireValidID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := primitive.ObjectIDFromHex(c.Params("id")); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_ID",
				Message: "Invalid id.",
			})
		}
		return c.Next()
	}
}

// RequireProductOwner verifica que el producto :id exista y pertenezca al vendedor
// autenticado. Debe usarse DESPUÉS de AccessGuard.Require (necesita LocalUserID) y de
// RequireValidID.
//
// Comportamiento:
//   - 404 Not Found → el producto no existe.
//   - 403 Forbidden → existe pero lo creó otro vendedor.
//   - En éxito deja el producto cargado en c.Locals y continúa.
func RequireProductOwner(products productLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, err := products.GetByID(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INTERNAL",
				Message: err.Error(),
			})
		}
		if product == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: "Product does not exist.",
			})
		}
		if product.SellerID != GetUserID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "You do not have access to this resource.",
			})
		}
		c.Locals(LocalProduct, product)
		return c.Next()
	}
}

// GetProduct devuelve el producto dejado por RequireProductOwner.
func GetProduct(c *fiber.Ctx) *entity.Product {
	v := c.Locals(LocalProduct)
	if v == nil {
		return nil
	}
	p, _ := v.(*entity.Product)
	return p
}
