// internal/middleware/helpers.go
package middleware

import (
	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"

	"github.com/gin-gonic/gin"
)

// MustGetUserID gets the authenticated user ID from context or panics
func MustGetUserID(c *gin.Context) string {
	id, exists := c.Get("user_id")
	if !exists {
		panic("user_id not found in context")
	}
	return id.(string)
}

// MustGetTenantID gets the tenant ID from context or panics
func MustGetTenantID(c *gin.Context) string {
	id, exists := c.Get("tenant_id")
	if !exists {
		panic("tenant_id not found in context")
	}
	return id.(string)
}

// MustGetJTI gets the session JTI from context or panics
func MustGetJTI(c *gin.Context) string {
	jti, exists := c.Get("jti")
	if !exists {
		panic("jti not found in context")
	}
	return jti.(string)
}

// MustGetCategory gets the gated claim category from context or panics
func MustGetCategory(c *gin.Context) claim.Category {
	v, exists := c.Get("category")
	if !exists {
		panic("category not found in context")
	}
	return v.(claim.Category)
}

// GetCompany gets the gated company from context, when the entitlement
// middleware has run.
func GetCompany(c *gin.Context) (*tenant.Company, bool) {
	v, exists := c.Get("company")
	if !exists {
		return nil, false
	}
	company, ok := v.(*tenant.Company)
	return company, ok
}

// IsAuthenticated checks if request is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("user_id")
	return exists
}
