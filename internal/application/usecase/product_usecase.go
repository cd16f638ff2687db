package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// shortDescriptionLen caracteres de descripción que viajan en las tarjetas de catálogo.
const shortDescriptionLen = 200

// ProductUseCase casos de uso del catálogo: CRUD de productos y listados paginados.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto del vendedor autenticado.
func (uc *ProductUseCase) Create(sellerID string, in dto.ProductRequest) error {
	if err := validateProduct(in); err != nil {
		return err
	}
	now := time.Now()
	product := &entity.Product{
		Name:         in.Name,
		Brand:        in.Brand,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Category:     in.Category,
		Image:        in.Image,
		FreeShipping: in.FreeShipping,
		Description:  in.Description,
		SellerID:     sellerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Create(product)
}

// GetByID obtiene el detalle completo de un producto; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &dto.ProductDetailResponse{ProductDetails: *toProductResponse(product)}, nil
}

// Update reemplaza los campos editables de un producto ya cargado (y verificado como
// propio) por la guardia de propiedad; evita recargar el documento.
func (uc *ProductUseCase) Update(product *entity.Product, in dto.ProductRequest) error {
	if err := validateProduct(in); err != nil {
		return err
	}
	product.Name = in.Name
	product.Brand = in.Brand
	product.Price = in.Price
	product.Quantity = in.Quantity
	product.Category = in.Category
	product.Image = in.Image
	product.FreeShipping = in.FreeShipping
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}

// Delete elimina un producto. Los items de carrito que lo referencien quedan como
// referencias colgantes: los listados de carrito los omiten al no resolver el join.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve una página del catálogo proyectada a tarjetas. sellerID vacío lista el
// catálogo global (sin orden garantizado); con sellerID filtra por vendedor y ordena por
// fecha de creación descendente. Una página más allá del final devuelve lista vacía y el
// TotalPage real, no un error.
func (uc *ProductUseCase) List(sellerID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	skip := (page.Page - 1) * page.Limit

	filter := repository.ListFilter{
		SellerID:     sellerID,
		Skip:         skip,
		Limit:        page.Limit,
		SortByNewest: sellerID != "",
	}
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, dto.ProductCard{
			ID:               p.ID,
			Name:             p.Name,
			Image:            p.Image,
			Brand:            p.Brand,
			Price:            p.Price,
			ShortDescription: shortDescription(p.Description),
		})
	}

	totalPage := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return &dto.ProductListResponse{ProductList: cards, TotalPage: totalPage}, nil
}

// validateProduct aplica las cotas del modelo: precio >= 0, stock >= 1, categoría del
// enum cerrado. Los chequeos de formato de campos ya pasaron en el handler.
func validateProduct(in dto.ProductRequest) error {
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidCategory(in.Category) {
		return domain.ErrInvalidInput
	}
	return nil
}

// shortDescription recorta la descripción a sus primeros caracteres (seguro para UTF-8).
func shortDescription(s string) string {
	r := []rune(s)
	if len(r) <= shortDescriptionLen {
		return s
	}
	return string(r[:shortDescriptionLen])
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Category:     p.Category,
		Image:        p.Image,
		FreeShipping: p.FreeShipping,
		Description:  p.Description,
		SellerID:     p.SellerID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
