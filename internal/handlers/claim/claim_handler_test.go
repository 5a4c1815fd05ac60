// internal/handlers/claim/claim_handler_test.go
package claim

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domclaim "skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"
	xerrors "skadeportal-service/internal/pkg/errors"
	"skadeportal-service/internal/pkg/response"
	claimsvc "skadeportal-service/internal/service/claim"
	"skadeportal-service/internal/service/document"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const claimUUID = "7f9c24e5-2f31-4a8e-9c1d-0b5a6c3d2e1f"

type stubRepo struct {
	claims    []*domclaim.Claim
	updateErr error
	deleteErr error
}

func (r *stubRepo) ListByTenant(context.Context, domclaim.Category, string) ([]*domclaim.Claim, error) {
	return r.claims, nil
}

func (r *stubRepo) FindByID(_ context.Context, _ domclaim.Category, _ string, id string) (*domclaim.Claim, error) {
	for _, c := range r.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *stubRepo) UpdateStatus(_ context.Context, _ domclaim.Category, _ string, id string, status domclaim.Status) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, c := range r.claims {
		if c.ID == id {
			c.Status = status
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (r *stubRepo) Delete(context.Context, domclaim.Category, string, string) error {
	return r.deleteErr
}

type stubTenants struct{}

func (stubTenants) FindByID(context.Context, string) (*tenant.Company, error) {
	return &tenant.Company{ID: "t1", Logo: "acme"}, nil
}

type stubStore struct {
	photos    []string
	removeErr error
}

func (s *stubStore) SignedURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + bucket + "/" + key, nil
}

func (s *stubStore) List(context.Context, string, string) ([]string, error) {
	return s.photos, nil
}

func (s *stubStore) Remove(context.Context, string, []string) error {
	return s.removeErr
}

func (s *stubStore) Download(context.Context, string, string) ([]byte, error) {
	return []byte("png-bytes"), nil
}

func newTestRouter(repo *stubRepo, store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := claimsvc.NewClaimService(
		repo,
		stubTenants{},
		store,
		nil,
		claimsvc.Buckets{Signatures: "signatures", DamageImages: "damage-images"},
		5*time.Second,
		zap.NewNop(),
	)
	h := NewClaimHandler(svc, document.NewService(zap.NewNop()), "./testdata", zap.NewNop())

	gateStub := func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("tenant_id", "t1")
		c.Set("category", domclaim.CategoryGlass)
	}

	claims := r.Group("/api/v1/claims/:category", gateStub)
	claims.GET("", h.List)
	claims.GET("/:id", h.Detail)
	claims.PATCH("/:id/status", h.UpdateStatus)
	claims.DELETE("/:id", h.Delete)
	claims.GET("/:id/images/:name", h.ImageURL)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func handlerClaim(id string) *domclaim.Claim {
	return &domclaim.Claim{
		ID:                 id,
		TenantID:           "t1",
		FirstName:          "Anna",
		LastName:           "Svensson",
		RegistrationNumber: "ABC123",
		Status:             domclaim.StatusNotStarted,
		CreatedAt:          time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local),
	}
}

func TestListAppliesQueryCriteria(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{
		handlerClaim(claimUUID),
		func() *domclaim.Claim {
			c := handlerClaim("8a1b3c5d-7e9f-4a2b-8c4d-6e8f0a2b4c6d")
			c.RegistrationNumber = "XYZ789"
			return c
		}(),
	}}
	r := newTestRouter(repo, &stubStore{})

	w, resp := do(t, r, http.MethodGet, "/api/v1/claims/glas?regnr=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result domclaim.ListResult
	require.NoError(t, json.Unmarshal(raw, &result))

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Claims, 1)
	assert.Equal(t, claimUUID, result.Claims[0].ID)
}

func TestListRejectsBadCriteria(t *testing.T) {
	r := newTestRouter(&stubRepo{}, &stubStore{})

	w, _ := do(t, r, http.MethodGet, "/api/v1/claims/glas?status=Klar", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/claims/glas?from=10-03-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDateRangeFiltersOnWholeDays(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{handlerClaim(claimUUID)}}
	r := newTestRouter(repo, &stubStore{})

	w, resp := do(t, r, http.MethodGet, "/api/v1/claims/glas?from=2026-03-10&to=2026-03-10", "")
	require.Equal(t, http.StatusOK, w.Code)

	raw, _ := json.Marshal(resp.Data)
	var result domclaim.ListResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Len(t, result.Claims, 1)

	w, resp = do(t, r, http.MethodGet, "/api/v1/claims/glas?to=2026-03-09", "")
	require.Equal(t, http.StatusOK, w.Code)
	raw, _ = json.Marshal(resp.Data)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Empty(t, result.Claims)
	assert.Equal(t, "Inga glasskador matchar dina sökkriterier.", result.Message)
}

func TestDetailRejectsMalformedID(t *testing.T) {
	r := newTestRouter(&stubRepo{}, &stubStore{})

	w, _ := do(t, r, http.MethodGet, "/api/v1/claims/glas/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailUnknownClaimIs404(t *testing.T) {
	r := newTestRouter(&stubRepo{}, &stubStore{})

	w, resp := do(t, r, http.MethodGet, "/api/v1/claims/glas/"+claimUUID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{handlerClaim(claimUUID)}}
	r := newTestRouter(repo, &stubStore{})

	w, resp := do(t, r, http.MethodPatch, "/api/v1/claims/glas/"+claimUUID+"/status",
		`{"status":"Avslutad"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, domclaim.StatusCompleted, repo.claims[0].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{handlerClaim(claimUUID)}}
	r := newTestRouter(repo, &stubStore{})

	w, _ := do(t, r, http.MethodPatch, "/api/v1/claims/glas/"+claimUUID+"/status",
		`{"status":"Klar"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domclaim.StatusNotStarted, repo.claims[0].Status)
}

func TestUpdateStatusFailureUsesSwedishMessage(t *testing.T) {
	repo := &stubRepo{
		claims:    []*domclaim.Claim{handlerClaim(claimUUID)},
		updateErr: errors.New("write failed"),
	}
	r := newTestRouter(repo, &stubStore{})

	w, resp := do(t, r, http.MethodPatch, "/api/v1/claims/glas/"+claimUUID+"/status",
		`{"status":"Avslutad"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Kunde inte uppdatera status", resp.Message)
}

func TestDeleteSuccessReportsSagaState(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{handlerClaim(claimUUID)}}
	r := newTestRouter(repo, &stubStore{photos: []string{"front.jpg"}})

	w, resp := do(t, r, http.MethodDelete, "/api/v1/claims/glas/"+claimUUID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	raw, _ := json.Marshal(resp.Data)
	var result claimsvc.DeleteResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, claimsvc.DeleteRecordRemoved, result.State)
	assert.Equal(t, 1, result.Photos)
}

func TestDeleteFailureExposesPartialState(t *testing.T) {
	repo := &stubRepo{
		claims:    []*domclaim.Claim{handlerClaim(claimUUID)},
		deleteErr: errors.New("record delete failed"),
	}
	r := newTestRouter(repo, &stubStore{photos: []string{"front.jpg"}})

	w, resp := do(t, r, http.MethodDelete, "/api/v1/claims/glas/"+claimUUID, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "record delete failed", resp.Message)

	raw, _ := json.Marshal(resp.Data)
	var result claimsvc.DeleteResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, claimsvc.DeleteArtifactsRemoved, result.State)
	assert.Equal(t, claimsvc.StepRecord, result.FailedStep)
}

func TestImageURLIssuesSignedURL(t *testing.T) {
	repo := &stubRepo{claims: []*domclaim.Claim{handlerClaim(claimUUID)}}
	r := newTestRouter(repo, &stubStore{})

	w, resp := do(t, r, http.MethodGet,
		"/api/v1/claims/glas/"+claimUUID+"/images/front.jpg", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "front.jpg", data["name"])
	assert.Equal(t, "https://signed.example/damage-images/"+claimUUID+"/front.jpg", data["url"])
}

func TestImageURLUnknownClaimIs404(t *testing.T) {
	r := newTestRouter(&stubRepo{}, &stubStore{})

	w, _ := do(t, r, http.MethodGet,
		"/api/v1/claims/glas/"+claimUUID+"/images/front.jpg", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
