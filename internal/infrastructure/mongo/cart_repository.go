package mongo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// cartDoc es la forma persistida de CartItem.
type cartDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BuyerID         primitive.ObjectID `bson:"buyerId"`
	ProductID       primitive.ObjectID `bson:"productId"`
	OrderedQuantity int                `bson:"orderedQuantity"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

// cartLineDoc es la fila del $lookup carrito-producto.
type cartLineDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	OrderedQuantity int                `bson:"orderedQuantity"`
	Product         struct {
		Name     string               `bson:"name"`
		Price    primitive.Decimal128 `bson:"price"`
		Quantity int                  `bson:"quantity"`
		Image    string               `bson:"image,omitempty"`
		Category string               `bson:"category"`
		Brand    string               `bson:"brand"`
	} `bson:"product"`
}

// CartRepo implementación del puerto CartRepository sobre MongoDB.
type CartRepo struct {
	col *mongo.Collection
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(db *mongo.Database) *CartRepo {
	return &CartRepo{col: db.Collection(cartsCollection)}
}

// Create persiste un nuevo item y asigna el ID generado.
func (r *CartRepo) Create(item *entity.CartItem) error {
	buyerID, err := primitive.ObjectIDFromHex(item.BuyerID)
	if err != nil {
		return fmt.Errorf("insert cart item: buyerId inválido %q", item.BuyerID)
	}
	productID, err := primitive.ObjectIDFromHex(item.ProductID)
	if err != nil {
		return fmt.Errorf("insert cart item: productId inválido %q", item.ProductID)
	}
	doc := cartDoc{
		ID:              primitive.NewObjectID(),
		BuyerID:         buyerID,
		ProductID:       productID,
		OrderedQuantity: item.OrderedQuantity,
		CreatedAt:       item.CreatedAt,
	}

	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

// GetByID obtiene un item por ID; (nil, nil) si no existe.
func (r *CartRepo) GetByID(id string) (*entity.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(bson.M{"_id": oid})
}

// GetByBuyerAndProduct resuelve el par único (buyerId, productId); (nil, nil) si no existe.
func (r *CartRepo) GetByBuyerAndProduct(buyerID, productID string) (*entity.CartItem, error) {
	bid, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil, nil
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, nil
	}
	return r.findOne(bson.M{"buyerId": bid, "productId": pid})
}

// Delete elimina un item individual.
func (r *CartRepo) Delete(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByBuyer vacía el carrito completo del comprador; borrar cero documentos
// también es éxito.
func (r *CartRepo) DeleteByBuyer(buyerID string) error {
	oid, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return nil
	}
	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.col.DeleteMany(ctx, bson.M{"buyerId": oid}); err != nil {
		return fmt.Errorf("flush cart: %w", err)
	}
	return nil
}

// ListWithProduct une cada item del comprador con la instantánea actual de su
// producto vía $lookup. Items cuyo producto fue eliminado no producen fila
// (el $unwind descarta lookups vacíos).
func (r *CartRepo) ListWithProduct(buyerID string) ([]*entity.CartDetail, error) {
	oid, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return []*entity.CartDetail{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"buyerId": oid}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         productsCollection,
			"localField":   "productId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$project", Value: bson.M{
			"orderedQuantity": 1,
			"product": bson.M{
				"name":     "$product.name",
				"price":    "$product.price",
				"quantity": "$product.quantity",
				"image":    "$product.image",
				"category": "$product.category",
				"brand":    "$product.brand",
			},
		}}},
	}

	ctx, cancel := opCtx()
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	var lines []cartLineDoc
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	details := make([]*entity.CartDetail, 0, len(lines))
	for _, l := range lines {
		price, err := fromDecimal128(l.Product.Price)
		if err != nil {
			return nil, err
		}
		details = append(details, &entity.CartDetail{
			ID:              l.ID.Hex(),
			OrderedQuantity: l.OrderedQuantity,
			Product: entity.ProductSnapshot{
				Name:     l.Product.Name,
				Price:    price,
				Quantity: l.Product.Quantity,
				Image:    l.Product.Image,
				Category: l.Product.Category,
				Brand:    l.Product.Brand,
			},
		})
	}
	return details, nil
}

// CountByBuyer cuenta los items del carrito del comprador.
func (r *CartRepo) CountByBuyer(buyerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(buyerID)
	if err != nil {
		return 0, nil
	}
	ctx, cancel := opCtx()
	defer cancel()
	total, err := r.col.CountDocuments(ctx, bson.M{"buyerId": oid})
	if err != nil {
		return 0, fmt.Errorf("count cart: %w", err)
	}
	return total, nil
}

func (r *CartRepo) findOne(filter bson.M) (*entity.CartItem, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var doc cartDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &entity.CartItem{
		ID:              doc.ID.Hex(),
		BuyerID:         doc.BuyerID.Hex(),
		ProductID:       doc.ProductID.Hex(),
		OrderedQuantity: doc.OrderedQuantity,
		CreatedAt:       doc.CreatedAt,
	}, nil
}
