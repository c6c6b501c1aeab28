package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stockpile/backend/internal/config"
	"github.com/stockpile/backend/internal/service"
)

// NewRouter constructs the Gin engine with all routes wired.
func NewRouter(cfg config.Config, authService *service.AuthService, itemService *service.ItemService) *gin.Engine {
	r := gin.Default()

	if len(cfg.Server.AllowedOrigins) > 0 {
		r.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	}

	r.GET("/ping", Ping)
	r.GET("/", Root)

	authHandler := NewAuthHandler(authService)
	itemHandler := NewItemHandler(itemService)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", AuthMiddleware(authService), authHandler.Me)
	}

	items := r.Group("/items", AuthMiddleware(authService))
	{
		items.POST("", itemHandler.Create)
		items.GET("", itemHandler.List)
		items.GET("/:id", itemHandler.Get)
		items.PUT("/:id", itemHandler.Update)
		items.DELETE("/:id", itemHandler.Delete)
	}

	return r
}
