// internal/middleware/entitlement.go
package middleware

import (
	"net/http"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"
	"skadeportal-service/internal/pkg/response"
	tenantsvc "skadeportal-service/internal/service/tenant"

	"github.com/gin-gonic/gin"
)

type EntitlementMiddleware struct {
	tenantService *tenantsvc.Service
}

func NewEntitlementMiddleware(tenantService *tenantsvc.Service) *EntitlementMiddleware {
	return &EntitlementMiddleware{
		tenantService: tenantService,
	}
}

// Gate parses the :category path segment and checks the tenant's enabled
// services before any claim handler runs. A denied tenant and a failed
// lookup get different statuses and messages, and in both cases no claim
// fetch happens. MUST be used after Auth().
func (m *EntitlementMiddleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := claim.ParseCategory(c.Param("category"))
		if err != nil {
			response.NotFound(c, "unknown claim category")
			return
		}

		userID := MustGetUserID(c)
		decision, company, err := m.tenantService.Check(c.Request.Context(), userID, category)
		switch decision {
		case tenant.LookupFailed:
			response.Error(c, http.StatusBadGateway, tenant.MsgAccessCheck, err)
			return
		case tenant.Unauthorized:
			response.Forbidden(c, tenant.MsgAccessDenied)
			return
		}

		c.Set("category", category)
		c.Set("company", company)
		c.Next()
	}
}
