package mongo

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toDecimal128 convierte un decimal de la aplicación al tipo monetario de BSON.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convertir decimal a Decimal128: %w", err)
	}
	return d128, nil
}

// fromDecimal128 convierte el tipo monetario de BSON al decimal de la aplicación.
func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	out, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("convertir Decimal128 a decimal: %w", err)
	}
	return out, nil
}
