// Package mongo implementa los puertos de persistencia sobre MongoDB.
// Las entidades de dominio no conocen al driver: cada repositorio traduce
// entre documentos BSON y entidades en la frontera.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/marketplace-api/pkg/config"
)

// Nombres de colecciones del marketplace.
const (
	usersCollection    = "users"
	productsCollection = "products"
	cartsCollection    = "carts"
)

// opTimeout acota cada viaje al almacén; ninguna operación de dominio bloquea más
// que un round trip.
const opTimeout = 5 * time.Second

// NewClient conecta con MongoDB y verifica la conexión con un ping.
// Un fallo aquí es fatal para el proceso (se decide en main).
func NewClient(ctx context.Context, cfg config.DBConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping a MongoDB: %w", err)
	}
	return client, nil
}

// opCtx crea el contexto acotado de una operación individual.
func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
