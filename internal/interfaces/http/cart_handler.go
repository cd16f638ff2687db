package http

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito (siempre detrás del rol buyer).
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddItem godoc
// @Summary      Agregar un producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "productId, orderedQuantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /cart/item/add [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderedQuantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderedQuantity debe ser al menos 1"})
	}
	// El id del producto viaja en el cuerpo: se valida su sintaxis antes de tocar el almacén.
	if _, err := primitive.ObjectIDFromHex(in.ProductID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid product ID format."})
	}

	err := h.uc.AddItem(GetUserID(c), in)
	switch err {
	case nil:
		return c.JSON(dto.MessageResponse{Message: "Success! The item is now in your shopping cart."})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product not found."})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Already in your cart! Consider increasing the quantity if you need more."})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Ordered quantity exceeds available stock."})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// DeleteItem godoc
// @Summary      Borrar un item del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /cart/item/delete/{id} [delete]
func (h *CartHandler) DeleteItem(c *fiber.Ctx) error {
	err := h.uc.DeleteItem(c.Params("id"), GetUserID(c))
	switch err {
	case nil:
		return c.JSON(dto.MessageResponse{Message: "Cart item deleted successfully."})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cart item not found."})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Access denied. You do not own this cart item."})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Flush godoc
// @Summary      Vaciar el carrito completo
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /cart/flush [delete]
func (h *CartHandler) Flush(c *fiber.Ctx) error {
	if err := h.uc.Flush(GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Cart emptied successfully."})
}

// List godoc
// @Summary      Listar el carrito con la instantánea actual de cada producto
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartListResponse
// @Router       /cart/list [post]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Message = "Cart items fetched successfully."
	return c.JSON(out)
}

// Count godoc
// @Summary      Total de items del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartCountResponse
// @Router       /cart/item/count [get]
func (h *CartHandler) Count(c *fiber.Ctx) error {
	total, err := h.uc.Count(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CartCountResponse{Message: "success", TotalCartItem: total})
}
