package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crea los índices del marketplace al arrancar (idempotente).
//
// El email de usuario lleva índice único: el registro hace chequeo previo, pero el
// índice cierra la carrera entre chequeo e inserción. El par (buyerId, productId)
// del carrito NO lleva índice único a propósito: el invariante de no duplicar se
// chequea en el caso de uso como mejor esfuerzo, igual que el chequeo de stock.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("crear índice users.email: %w", err)
	}

	_, err = db.Collection(cartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "buyerId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("crear índice carts.buyerId: %w", err)
	}

	_, err = db.Collection(productsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sellerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("crear índice products.sellerId: %w", err)
	}
	return nil
}
