package mongo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDoc es la forma persistida de Product. El precio se guarda como Decimal128.
type productDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Brand        string               `bson:"brand"`
	Price        primitive.Decimal128 `bson:"price"`
	Quantity     int                  `bson:"quantity"`
	Category     string               `bson:"category"`
	Image        string               `bson:"image,omitempty"`
	FreeShipping bool                 `bson:"freeShipping"`
	Description  string               `bson:"description"`
	SellerID     primitive.ObjectID   `bson:"sellerId"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(productsCollection)}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	doc, err := productToDoc(product)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = doc.ID.Hex()
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := opCtx()
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return docToProduct(&doc)
}

// Update reemplaza los campos editables de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return fmt.Errorf("update product: id inválido %q", product.ID)
	}
	price, err := toDecimal128(product.Price)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":         product.Name,
		"brand":        product.Brand,
		"price":        price,
		"quantity":     product.Quantity,
		"category":     product.Category,
		"image":        product.Image,
		"freeShipping": product.FreeShipping,
		"description":  product.Description,
		"updatedAt":    product.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto. No limpia items de carrito que lo referencien.
func (r *ProductRepo) Delete(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	ctx, cancel := opCtx()
	defer cancel()
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List devuelve una página de productos según el filtro. El listado global no
// garantiza orden; el de vendedor ordena por fecha de creación descendente.
func (r *ProductRepo) List(filter repository.ListFilter) ([]*entity.Product, error) {
	match, err := listMatch(filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))
	if filter.SortByNewest {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	ctx, cancel := opCtx()
	defer cancel()

	cursor, err := r.col.Find(ctx, match, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		p, err := docToProduct(&docs[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Count cuenta los productos que cumplen el mismo predicado que List.
func (r *ProductRepo) Count(filter repository.ListFilter) (int64, error) {
	match, err := listMatch(filter)
	if err != nil {
		return 0, err
	}
	ctx, cancel := opCtx()
	defer cancel()
	total, err := r.col.CountDocuments(ctx, match)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func listMatch(filter repository.ListFilter) (bson.M, error) {
	if filter.SellerID == "" {
		return bson.M{}, nil
	}
	oid, err := primitive.ObjectIDFromHex(filter.SellerID)
	if err != nil {
		return nil, fmt.Errorf("list products: sellerId inválido %q", filter.SellerID)
	}
	return bson.M{"sellerId": oid}, nil
}

func productToDoc(p *entity.Product) (*productDoc, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return nil, err
	}
	sellerID, err := primitive.ObjectIDFromHex(p.SellerID)
	if err != nil {
		return nil, fmt.Errorf("sellerId inválido %q", p.SellerID)
	}
	return &productDoc{
		Name:         p.Name,
		Brand:        p.Brand,
		Price:        price,
		Quantity:     p.Quantity,
		Category:     p.Category,
		Image:        p.Image,
		FreeShipping: p.FreeShipping,
		Description:  p.Description,
		SellerID:     sellerID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

func docToProduct(d *productDoc) (*entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Brand:        d.Brand,
		Price:        price,
		Quantity:     d.Quantity,
		Category:     d.Category,
		Image:        d.Image,
		FreeShipping: d.FreeShipping,
		Description:  d.Description,
		SellerID:     d.SellerID.Hex(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}
