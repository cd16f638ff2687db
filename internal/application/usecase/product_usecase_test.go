package usecase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

const (
	sellerA = "64b000000000000000000001"
	sellerB = "64b000000000000000000002"
)

func validProductRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:         "Auriculares inalámbricos",
		Brand:        "Sony",
		Price:        decimal.NewFromFloat(199.99),
		Quantity:     15,
		Category:     "electronics",
		Image:        "https://cdn.example.com/headphones.jpg",
		FreeShipping: true,
		Description:  "Auriculares con cancelación activa de ruido y 30 horas de batería.",
	}
}

// seedCatalog inserta n productos del vendedor con CreatedAt creciente (el último
// insertado es el más reciente).
func seedCatalog(repo *fakeProductRepo, sellerID string, n int) []string {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := repo.seed(entity.Product{
			Name:        fmt.Sprintf("Producto %02d", i+1),
			Brand:       "Acme",
			Price:       decimal.NewFromInt(int64(10 + i)),
			Quantity:    5,
			Category:    "electronics",
			Description: "Descripción genérica de producto para el catálogo de pruebas.",
			SellerID:    sellerID,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		ids = append(ids, id)
	}
	return ids
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / validación
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AltaExitosaAsignaVendedor(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Create(sellerA, validProductRequest()))

	require.Len(t, repo.products, 1)
	created := repo.products[0]
	assert.NotEmpty(t, created.ID, "el almacén debe asignar un ID")
	assert.Equal(t, sellerA, created.SellerID,
		"el dueño es siempre el vendedor autenticado, nunca un campo del cuerpo")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductCreate_ValidacionDeCotas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.ProductRequest)
	}{
		{"precio negativo", func(r *dto.ProductRequest) { r.Price = decimal.NewFromInt(-1) }},
		{"cantidad cero", func(r *dto.ProductRequest) { r.Quantity = 0 }},
		{"categoría fuera del enum", func(r *dto.ProductRequest) { r.Category = "muebles" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProductRepo{}
			uc := usecase.NewProductUseCase(repo)
			req := validProductRequest()
			tc.mutate(&req)

			err := uc.Create(sellerA, req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.products, "no debe persistirse nada si la validación falla")
		})
	}
}

func TestProductCreate_PrecioCeroEsValido(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	req := validProductRequest()
	req.Price = decimal.Zero

	assert.NoError(t, uc.Create(sellerA, req), "precio 0 está dentro de cota (>= 0)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_InexistenteDevuelveNilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	detail, err := uc.GetByID("64c0000000000000000000ff")

	assert.NoError(t, err)
	assert.Nil(t, detail)
}

func TestProductUpdate_ReemplazaCamposEditables(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := repo.seed(entity.Product{
		Name: "Nombre viejo", Brand: "Acme", Price: decimal.NewFromInt(10),
		Quantity: 3, Category: "electronics", SellerID: sellerA,
		Description: "Descripción original del producto antes de la edición.",
	})
	loaded, err := repo.GetByID(id)
	require.NoError(t, err)

	in := validProductRequest()
	in.Name = "Nombre nuevo"
	require.NoError(t, uc.Update(loaded, in))

	after, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Nombre nuevo", after.Name)
	assert.Equal(t, sellerA, after.SellerID, "la edición nunca transfiere la propiedad")
	assert.False(t, after.UpdatedAt.IsZero())
}

func TestProductDelete_EliminaDelCatalogo(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := repo.seed(entity.Product{Name: "Efímero", SellerID: sellerA, Price: decimal.NewFromInt(5)})

	require.NoError(t, uc.Delete(id))

	got, err := repo.GetByID(id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List: paginación, orden y proyección
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_PaginacionGlobal(t *testing.T) {
	repo := &fakeProductRepo{}
	seedCatalog(repo, sellerA, 8)
	seedCatalog(repo, sellerB, 17) // total global: 25
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, resp.ProductList, 10, "la página 2 de 25 con limit 10 trae 10 tarjetas")
	assert.Equal(t, 3, resp.TotalPage, "ceil(25/10) = 3")
}

func TestProductList_UltimaPaginaParcial(t *testing.T) {
	repo := &fakeProductRepo{}
	seedCatalog(repo, sellerA, 25)
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, resp.ProductList, 5)
	assert.Equal(t, 3, resp.TotalPage)
}

func TestProductList_PaginaMasAllaDelFinal(t *testing.T) {
	repo := &fakeProductRepo{}
	seedCatalog(repo, sellerA, 5)
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{Page: 4, Limit: 10})

	require.NoError(t, err, "pedir una página vacía no es un error")
	assert.Empty(t, resp.ProductList)
	assert.Equal(t, 1, resp.TotalPage, "TotalPage refleja el total real, no la página pedida")
}

func TestProductList_DefaultsDePaginacion(t *testing.T) {
	repo := &fakeProductRepo{}
	seedCatalog(repo, sellerA, 12)
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{}) // sin page ni limit

	require.NoError(t, err)
	assert.Len(t, resp.ProductList, 10, "por defecto page=1, limit=10")
	assert.Equal(t, 2, resp.TotalPage)
}

func TestProductList_VendedorSoloVeLoSuyoOrdenadoPorRecencia(t *testing.T) {
	repo := &fakeProductRepo{}
	idsA := seedCatalog(repo, sellerA, 3)
	seedCatalog(repo, sellerB, 4)
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List(sellerA, dto.PageRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.ProductList, 3, "el listado de vendedor excluye productos ajenos")
	assert.Equal(t, 1, resp.TotalPage)

	// seedCatalog inserta en orden cronológico: el último id es el más reciente.
	assert.Equal(t, idsA[2], resp.ProductList[0].ID)
	assert.Equal(t, idsA[1], resp.ProductList[1].ID)
	assert.Equal(t, idsA[0], resp.ProductList[2].ID)
}

func TestProductList_ShortDescriptionRecortaA200(t *testing.T) {
	repo := &fakeProductRepo{}
	long := strings.Repeat("ñ", 350) // multibyte a propósito
	repo.seed(entity.Product{
		Name: "Descripción larga", Brand: "Acme", Price: decimal.NewFromInt(1),
		Quantity: 1, Category: "electronics", SellerID: sellerA, Description: long,
		CreatedAt: time.Now(),
	})
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.ProductList, 1)
	short := resp.ProductList[0].ShortDescription
	assert.Equal(t, 200, len([]rune(short)), "la tarjeta recorta a 200 caracteres, no bytes")
	assert.True(t, strings.HasPrefix(long, short))
}

func TestProductList_DescripcionCortaViajaCompleta(t *testing.T) {
	repo := &fakeProductRepo{}
	repo.seed(entity.Product{
		Name: "Breve", Brand: "Acme", Price: decimal.NewFromInt(1), Quantity: 1,
		Category: "electronics", SellerID: sellerA, Description: "Apenas unas palabras.",
		CreatedAt: time.Now(),
	})
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List("", dto.PageRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.ProductList, 1)
	assert.Equal(t, "Apenas unas palabras.", resp.ProductList[0].ShortDescription)
}
