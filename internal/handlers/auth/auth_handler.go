// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"skadeportal-service/internal/domain/auth"
	"skadeportal-service/internal/middleware"
	"skadeportal-service/internal/pkg/response"
	authsvc "skadeportal-service/internal/service/auth"
	tenantsvc "skadeportal-service/internal/service/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService   *authsvc.AuthService
	tenantService *tenantsvc.Service
	logger        *zap.Logger
}

func NewAuthHandler(authService *authsvc.AuthService, tenantService *tenantsvc.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		tenantService: tenantService,
		logger:        logger,
	}
}

// Login authenticates a staff user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// Wrong email and wrong password are indistinguishable on purpose.
		response.Error(c, http.StatusUnauthorized, "Fel e-postadress eller lösenord", nil)
		return
	}

	response.Success(c, http.StatusOK, "logged in", result)
}

// Logout invalidates the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	jti := middleware.MustGetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), userID, jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to log out", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out", nil)
}

// GetMe returns the authenticated user and their company profile.
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	company, err := h.tenantService.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile", gin.H{
		"user": auth.UserInfo{
			ID:       userID,
			Email:    c.GetString("email"),
			TenantID: middleware.MustGetTenantID(c),
		},
		"company": company,
	})
}
