package usecase

import (
	"time"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// CartUseCase aplica los invariantes del carrito antes de delegar en el almacén:
// a lo sumo un item por par (comprador, producto) y cantidad pedida acotada por el
// stock disponible al momento del chequeo.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem agrega un producto al carrito del comprador.
// ErrNotFound si el producto no existe; ErrDuplicate si ya está en el carrito
// (no se fusionan cantidades: el comprador borra y vuelve a agregar);
// ErrInsufficientStock si la cantidad pedida supera el stock.
//
// La secuencia chequear-e-insertar no es atómica: dos peticiones concurrentes del
// mismo comprador pueden pasar ambas el chequeo. Es un chequeo de mejor esfuerzo
// al momento de la lectura, no una reserva.
func (uc *CartUseCase) AddItem(buyerID string, in dto.AddCartItemRequest) error {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	existing, err := uc.cartRepo.GetByBuyerAndProduct(buyerID, in.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}

	if in.OrderedQuantity > product.Quantity {
		return domain.ErrInsufficientStock
	}

	item := &entity.CartItem{
		BuyerID:         buyerID,
		ProductID:       in.ProductID,
		OrderedQuantity: in.OrderedQuantity,
		CreatedAt:       time.Now(),
	}
	return uc.cartRepo.Create(item)
}

// DeleteItem borra un item individual. ErrNotFound si no existe;
// ErrForbidden si pertenece a otro comprador.
func (uc *CartUseCase) DeleteItem(cartItemID, buyerID string) error {
	item, err := uc.cartRepo.GetByID(cartItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.BuyerID != buyerID {
		return domain.ErrForbidden
	}
	return uc.cartRepo.Delete(cartItemID)
}

// Flush vacía el carrito completo del comprador. Vaciar un carrito ya vacío
// también es éxito (idempotente).
func (uc *CartUseCase) Flush(buyerID string) error {
	return uc.cartRepo.DeleteByBuyer(buyerID)
}

// List devuelve los items del comprador unidos con la instantánea actual de su
// producto (nombre, precio, stock, imagen, categoría y marca al momento de la
// lectura, no del alta).
func (uc *CartUseCase) List(buyerID string) (*dto.CartListResponse, error) {
	details, err := uc.cartRepo.ListWithProduct(buyerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartItemResponse, 0, len(details))
	for _, d := range details {
		items = append(items, dto.CartItemResponse{
			ID:              d.ID,
			OrderedQuantity: d.OrderedQuantity,
			Product: dto.CartProduct{
				Name:     d.Product.Name,
				Price:    d.Product.Price,
				Quantity: d.Product.Quantity,
				Image:    d.Product.Image,
				Category: d.Product.Category,
				Brand:    d.Product.Brand,
			},
		})
	}
	return &dto.CartListResponse{CartItems: items}, nil
}

// Count devuelve cuántos items tiene el carrito del comprador.
func (uc *CartUseCase) Count(buyerID string) (int64, error) {
	return uc.cartRepo.CountByBuyer(buyerID)
}
