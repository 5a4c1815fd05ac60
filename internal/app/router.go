// internal/app/router.go
package app

import (
	"net/http"

	authHandler "skadeportal-service/internal/handlers/auth"
	claimHandler "skadeportal-service/internal/handlers/claim"
	"skadeportal-service/internal/middleware"
	"skadeportal-service/internal/ws"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler           *authHandler.AuthHandler
	ClaimHandler          *claimHandler.ClaimHandler
	AuthMiddleware        *middleware.AuthMiddleware
	EntitlementMiddleware *middleware.EntitlementMiddleware
	Hub                   *ws.Hub
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/logout", h.AuthMiddleware.Auth(), h.AuthHandler.Logout)
		auth.GET("/me", h.AuthMiddleware.Auth(), h.AuthHandler.GetMe)
	}

	// Every claim route passes the entitlement gate: the tenant must carry
	// the category's service tag before any claim data is touched.
	claims := api.Group("/claims/:category",
		h.AuthMiddleware.Auth(),
		h.EntitlementMiddleware.Gate(),
	)
	{
		claims.GET("", h.ClaimHandler.List)
		claims.GET("/:id", h.ClaimHandler.Detail)
		claims.PATCH("/:id/status", h.ClaimHandler.UpdateStatus)
		claims.DELETE("/:id", h.ClaimHandler.Delete)
		claims.GET("/:id/document", h.ClaimHandler.Document)
		claims.GET("/:id/images/:name", h.ClaimHandler.ImageURL)
	}

	r.GET("/ws", h.AuthMiddleware.Auth(), func(c *gin.Context) {
		h.Hub.ServeWS(c, middleware.MustGetTenantID(c))
	})
}
