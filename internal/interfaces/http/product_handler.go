package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar producto (vendedor)
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /product/add [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateProductBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	if err := h.uc.Create(GetUserID(c), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Product is added successfully."})
}

// BuyerList godoc
// @Summary      Listar catálogo global (comprador)
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageRequest  true  "page, limit"
// @Success      200   {object}  dto.ProductListResponse
// @Router       /product/buyer/list [post]
func (h *ProductHandler) BuyerList(c *fiber.Ctx) error {
	return h.list(c, "")
}

// SellerList godoc
// @Summary      Listar productos propios (vendedor), más recientes primero
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageRequest  true  "page, limit"
// @Success      200   {object}  dto.ProductListResponse
// @Router       /product/seller/list [post]
func (h *ProductHandler) SellerList(c *fiber.Ctx) error {
	return h.list(c, GetUserID(c))
}

func (h *ProductHandler) list(c *fiber.Ctx, sellerID string) error {
	var page dto.PageRequest
	if err := c.BodyParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if page.Page < 0 || page.Limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page y limit deben ser >= 1"})
	}
	out, err := h.uc.List(sellerID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out.Message = "Success."
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un producto (cualquier usuario autenticado)
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/detail/{id} [get]
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product does not exist."})
	}
	out.Message = "success"
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un producto propio (vendedor dueño)
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/delete/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	// RequireProductOwner ya verificó existencia y propiedad.
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Product is deleted successfully."})
}

// Edit godoc
// @Summary      Editar un producto propio (vendedor dueño)
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /product/edit/{id} [put]
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateProductBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	product := GetProduct(c) // cargado por RequireProductOwner
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Product does not exist."})
	}
	if err := h.uc.Update(product, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Product is updated successfully."})
}

// validateProductBody chequea el esquema del cuerpo; devuelve el mensaje de error o
// cadena vacía. Las cotas de dominio (precio, stock, enum) se validan en el use case.
func validateProductBody(in dto.ProductRequest) string {
	if in.Name == "" || len(in.Name) > 255 {
		return "name es requerido (máximo 255 caracteres)"
	}
	if in.Brand == "" || len(in.Brand) > 255 {
		return "brand es requerido (máximo 255 caracteres)"
	}
	if in.Category == "" {
		return "category es requerida"
	}
	if len(in.Description) < 10 || len(in.Description) > 1000 {
		return "description debe tener entre 10 y 1000 caracteres"
	}
	return ""
}
