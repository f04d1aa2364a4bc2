package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/auth-api/internal/application/auth"
	"github.com/tu-usuario/auth-api/internal/application/usecase"
	"github.com/tu-usuario/auth-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/token/refresh", authHandler.Refresh)
	authGroup.Post("/password/reset", authHandler.RequestReset)
	authGroup.Post("/password/reset/confirm", authHandler.ConfirmReset)

	// Perfil propio (requiere Bearer Token)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Gestión de usuarios (solo admin)
	users := authGroup.Group("/users",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
	)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/create", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Post("/:id/block", userHandler.Block)
	users.Post("/:id/access", userHandler.SetAccess)
}
