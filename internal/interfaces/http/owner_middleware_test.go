package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	apphttp "github.com/jhoicas/marketplace-api/internal/interfaces/http"
)

const (
	ownerID    = "64b000000000000000000001"
	intruderID = "64b000000000000000000002"
	productID  = "64c000000000000000000001"
)

// fakeProductStore sirve productos desde un mapa en memoria.
type fakeProductStore struct {
	products map[string]*entity.Product
}

func (f *fakeProductStore) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

// buildOwnerApp monta la cadena de guardias de una ruta de mutación de producto,
// con la identidad ya resuelta (asUserID simula lo que deja AccessGuard en locals).
func buildOwnerApp(asUserID string) *fiber.App {
	store := &fakeProductStore{products: map[string]*entity.Product{
		productID: {
			ID:       productID,
			Name:     "Teclado mecánico",
			Brand:    "Keychron",
			Price:    decimal.NewFromInt(120),
			Quantity: 10,
			Category: "electronics",
			SellerID: ownerID,
		},
	}}

	app := fiber.New()
	app.Delete("/product/delete/:id",
		func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalUserID, asUserID)
			return c.Next()
		},
		apphttp.RequireValidID(),
		apphttp.RequireProductOwner(store),
		func(c *fiber.Ctx) error {
			p := apphttp.GetProduct(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"loaded": p != nil, "name": p.Name})
		},
	)
	return app
}

func deleteProduct(t *testing.T, app *fiber.App, id string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/product/delete/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El dueño pasa la guardia y el handler recibe el producto ya cargado en locals.
func TestRequireProductOwner_DuenoAccede(t *testing.T) {
	app := buildOwnerApp(ownerID)
	resp := deleteProduct(t, app, productID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["loaded"], "el producto debe quedar en locals para el handler")
	assert.Equal(t, "Teclado mecánico", body["name"])
}

// Otro vendedor autenticado recibe 403, no 404: el recurso existe pero no es suyo.
func TestRequireProductOwner_OtroVendedorRecibe403(t *testing.T) {
	app := buildOwnerApp(intruderID)
	resp := deleteProduct(t, app, productID)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "You do not have access to this resource.", body["message"])
}

// Producto inexistente con id bien formado → 404.
func TestRequireProductOwner_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildOwnerApp(ownerID)
	resp := deleteProduct(t, app, "64c0000000000000000000ff")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Product does not exist.", body["message"])
}

// Id malformado se corta en RequireValidID con 400, sin tocar el almacén.
func TestRequireValidID_IdMalformado_Retorna400(t *testing.T) {
	app := buildOwnerApp(ownerID)
	resp := deleteProduct(t, app, "no-es-un-objectid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid id.", body["message"])
}
