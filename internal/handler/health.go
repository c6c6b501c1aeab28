package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockpile/backend/internal/model"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Root lists the available endpoints, the only unauthenticated view of the API.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Message: "Welcome to the item store API",
		Endpoints: map[string]string{
			"register":    "POST /auth/register",
			"login":       "POST /auth/login",
			"me":          "GET /auth/me (protected)",
			"items":       "GET /items (protected)",
			"create_item": "POST /items (protected)",
			"get_item":    "GET /items/{id} (protected)",
			"update_item": "PUT /items/{id} (protected)",
			"delete_item": "DELETE /items/{id} (protected)",
		},
	})
}
