package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	Tokens    ports.TokenVerifier
	Log       *logger.Logger
	AppName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	app.Post("/login", authHandler.Login)

	requireAuth := AuthMiddleware(deps.Tokens, log)

	// Cuentas (protegido; mutaciones solo admin)
	users := app.Group("/usuarios", requireAuth)
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", RequireAction(authz.ReadAccount), userHandler.List)
	users.Post("/", RequireAction(authz.CreateAccount), userHandler.Create)
	users.Put("/:id", RequireAction(authz.UpdateAccount), userHandler.Update)
	users.Delete("/:id", RequireAction(authz.DeleteAccount), userHandler.Delete)

	// Productos (protegido; mutaciones solo admin)
	products := app.Group("/productos", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", RequireAction(authz.ReadItem), productHandler.List)
	products.Get("/:id", RequireAction(authz.ReadItem), productHandler.GetByID)
	products.Post("/", RequireAction(authz.CreateItem), productHandler.Create)
	products.Put("/:id", RequireAction(authz.UpdateItem), productHandler.Update)
	products.Delete("/:id", RequireAction(authz.DeleteItem), productHandler.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "ruta no encontrada")
	})
}
