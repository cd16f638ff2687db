package usecase_test

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// fakeProductRepo implementa repository.ProductRepository sobre un slice en memoria,
// replicando la semántica del adaptador real: Create asigna ID, Get devuelve (nil, nil)
// si no existe, List respeta filtro, orden, skip y limit.
type fakeProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = primitive.NewObjectID().Hex()
	cp := *p
	f.products = append(f.products, &cp)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			cp := *product
			f.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) Delete(id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) List(filter repository.ListFilter) ([]*entity.Product, error) {
	matched := f.match(filter)
	if filter.SortByNewest {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}
	if filter.Skip >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	out := make([]*entity.Product, 0, len(matched))
	for _, p := range matched {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(filter repository.ListFilter) (int64, error) {
	return int64(len(f.match(filter))), nil
}

func (f *fakeProductRepo) match(filter repository.ListFilter) []*entity.Product {
	var matched []*entity.Product
	for _, p := range f.products {
		if filter.SellerID != "" && p.SellerID != filter.SellerID {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// seed inserta un producto tal cual, sin pasar por Create (permite fijar CreatedAt).
func (f *fakeProductRepo) seed(p entity.Product) string {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	f.products = append(f.products, &p)
	return p.ID
}

// fakeCartRepo implementa repository.CartRepository en memoria. ListWithProduct hace el
// join contra el fakeProductRepo compartido y omite referencias colgantes, igual que el
// pipeline de agregación real.
type fakeCartRepo struct {
	items    []*entity.CartItem
	products *fakeProductRepo
}

var _ repository.CartRepository = (*fakeCartRepo)(nil)

func (f *fakeCartRepo) Create(item *entity.CartItem) error {
	item.ID = primitive.NewObjectID().Hex()
	cp := *item
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeCartRepo) GetByID(id string) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) GetByBuyerAndProduct(buyerID, productID string) (*entity.CartItem, error) {
	for _, it := range f.items {
		if it.BuyerID == buyerID && it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) Delete(id string) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCartRepo) DeleteByBuyer(buyerID string) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.BuyerID != buyerID {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepo) ListWithProduct(buyerID string) ([]*entity.CartDetail, error) {
	var out []*entity.CartDetail
	for _, it := range f.items {
		if it.BuyerID != buyerID {
			continue
		}
		p, _ := f.products.GetByID(it.ProductID)
		if p == nil {
			continue // referencia colgante: el producto fue borrado
		}
		out = append(out, &entity.CartDetail{
			ID:              it.ID,
			OrderedQuantity: it.OrderedQuantity,
			Product: entity.ProductSnapshot{
				Name:     p.Name,
				Price:    p.Price,
				Quantity: p.Quantity,
				Image:    p.Image,
				Category: p.Category,
				Brand:    p.Brand,
			},
		})
	}
	return out, nil
}

func (f *fakeCartRepo) CountByBuyer(buyerID string) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.BuyerID == buyerID {
			n++
		}
	}
	return n, nil
}
