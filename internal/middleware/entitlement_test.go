// internal/middleware/entitlement_test.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skadeportal-service/internal/domain/tenant"
	"skadeportal-service/internal/pkg/response"
	tenantsvc "skadeportal-service/internal/service/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTenantRepo struct {
	company *tenant.Company
	err     error
	calls   int
}

func (r *fakeTenantRepo) FindByUserID(context.Context, string) (*tenant.Company, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.company, nil
}

func (r *fakeTenantRepo) FindByID(context.Context, string) (*tenant.Company, error) {
	return r.company, r.err
}

// gateRouter builds a minimal claims route behind the gate, with a stub
// auth step and a handler that counts how often the claim layer is reached.
func gateRouter(repo *fakeTenantRepo, fetches *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	m := NewEntitlementMiddleware(tenantsvc.NewService(repo, zap.NewNop()))
	authStub := func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("tenant_id", "t1")
	}

	r.GET("/api/v1/claims/:category", authStub, m.Gate(), func(c *gin.Context) {
		*fetches++
		response.Success(c, http.StatusOK, "claims retrieved", gin.H{
			"category": MustGetCategory(c),
		})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGateAllowsEnabledCategory(t *testing.T) {
	repo := &fakeTenantRepo{company: &tenant.Company{ID: "t1", Services: []string{"glas"}}}
	fetches := 0
	r := gateRouter(repo, &fetches)

	w, body := doGet(t, r, "/api/v1/claims/glas")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, 1, fetches)
}

func TestGateDeniesMissingServiceWithoutFetching(t *testing.T) {
	repo := &fakeTenantRepo{company: &tenant.Company{ID: "t1", Services: []string{"glas"}}}
	fetches := 0
	r := gateRouter(repo, &fetches)

	w, body := doGet(t, r, "/api/v1/claims/keys")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, tenant.MsgAccessDenied, body.Message)
	assert.Zero(t, fetches, "a denied tenant must not reach the claim layer")
}

func TestGateLookupFailureIsNotADenial(t *testing.T) {
	repo := &fakeTenantRepo{err: errors.New("profile query failed")}
	fetches := 0
	r := gateRouter(repo, &fetches)

	w, body := doGet(t, r, "/api/v1/claims/glas")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, tenant.MsgAccessCheck, body.Message)
	assert.NotEqual(t, tenant.MsgAccessDenied, body.Message)
	assert.Zero(t, fetches)
}

func TestGateRejectsUnknownCategoryBeforeLookup(t *testing.T) {
	repo := &fakeTenantRepo{company: &tenant.Company{ID: "t1", Services: []string{"glas"}}}
	fetches := 0
	r := gateRouter(repo, &fetches)

	w, _ := doGet(t, r, "/api/v1/claims/locks")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, repo.calls, "no tenant lookup for an unknown category")
	assert.Zero(t, fetches)
}
