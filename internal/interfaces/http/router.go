package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CartUC      *usecase.CartUseCase
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	JWTSecret   string
}

// Router registra las rutas de la API. Toda mutación pasa por la guardia de acceso,
// y las mutaciones de producto además por la guardia de propiedad.
func Router(app *fiber.App, deps RouterDeps) {
	guard := NewAccessGuard(deps.JWTSecret, deps.UserRepo)

	// User (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	user := app.Group("/user")
	user.Post("/register", authHandler.Register)
	user.Post("/login", authHandler.Login)

	// Product
	productHandler := NewProductHandler(deps.ProductUC)
	product := app.Group("/product")
	product.Post("/add", guard.Require(entity.RoleSeller), productHandler.Add)
	product.Post("/buyer/list", guard.Require(entity.RoleBuyer), productHandler.BuyerList)
	product.Post("/seller/list", guard.Require(entity.RoleSeller), productHandler.SellerList)
	product.Get("/detail/:id", guard.Require(), RequireValidID(), productHandler.Detail)
	product.Delete("/delete/:id",
		guard.Require(entity.RoleSeller),
		RequireValidID(),
		RequireProductOwner(deps.ProductRepo),
		productHandler.Delete,
	)
	product.Put("/edit/:id",
		guard.Require(entity.RoleSeller),
		RequireValidID(),
		RequireProductOwner(deps.ProductRepo),
		productHandler.Edit,
	)

	// Cart (solo compradores)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := app.Group("/cart", guard.Require(entity.RoleBuyer))
	cart.Post("/item/add", cartHandler.AddItem)
	cart.Delete("/item/delete/:id", RequireValidID(), cartHandler.DeleteItem)
	cart.Delete("/flush", cartHandler.Flush)
	cart.Post("/list", cartHandler.List)
	cart.Get("/item/count", cartHandler.Count)
}
