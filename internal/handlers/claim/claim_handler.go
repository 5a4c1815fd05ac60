// internal/handlers/claim/claim_handler.go
package claim

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/middleware"
	xerrors "skadeportal-service/internal/pkg/errors"
	"skadeportal-service/internal/pkg/response"
	claimsvc "skadeportal-service/internal/service/claim"
	"skadeportal-service/internal/service/document"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClaimHandler struct {
	claimService    *claimsvc.ClaimService
	documentService *document.Service
	logoDir         string
	logger          *zap.Logger
}

func NewClaimHandler(claimService *claimsvc.ClaimService, documentService *document.Service, logoDir string, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		claimService:    claimService,
		documentService: documentService,
		logoDir:         logoDir,
		logger:          logger,
	}
}

// List returns the tenant's claims, newest first, filtered by the query
// criteria. The payload carries the unfiltered total and an empty-state
// message distinguishing "no claims" from "no matches".
func (h *ClaimHandler) List(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	criteria, err := parseCriteria(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter criteria", err)
		return
	}

	result, err := h.claimService.List(c.Request.Context(), category, tenantID, criteria)
	if err != nil {
		response.Error(c, http.StatusInternalServerError,
			xerrors.DisplayMessage(err, category.FetchErrorMessage()), err)
		return
	}

	response.Success(c, http.StatusOK, "claims retrieved", result)
}

// Detail returns the full claim plus its artifact references. All
// sub-fetches must succeed; otherwise the failing one's message is returned
// and nothing partial is rendered.
func (h *ClaimHandler) Detail(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	id, ok := claimID(c)
	if !ok {
		return
	}

	detail, err := h.claimService.Detail(c.Request.Context(), category, tenantID, id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "claim not found")
			return
		}
		response.Error(c, http.StatusInternalServerError,
			xerrors.DisplayMessage(err, category.FetchErrorMessage()), err)
		return
	}

	response.Success(c, http.StatusOK, "claim retrieved", detail)
}

// UpdateStatus applies the single-field status transition. The response
// echoes the new status so the client can merge it without a re-fetch.
func (h *ClaimHandler) UpdateStatus(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	id, ok := claimID(c)
	if !ok {
		return
	}

	var req claim.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	status, err := claim.ParseStatus(req.Status)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid status", err)
		return
	}

	if err := h.claimService.UpdateStatus(c.Request.Context(), category, tenantID, id, status); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "claim not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, claimsvc.MsgStatusUpdate, err)
		return
	}

	response.Success(c, http.StatusOK, "status updated", gin.H{
		"id":     id,
		"status": status,
	})
}

// Delete runs the deletion saga. On failure the saga state shows what was
// already removed; the raw error message is surfaced as-is.
func (h *ClaimHandler) Delete(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	id, ok := claimID(c)
	if !ok {
		return
	}

	result := h.claimService.Delete(c.Request.Context(), category, tenantID, id)
	if !result.Deleted() {
		if xerrors.Is(result.Err, xerrors.ErrNotFound) {
			response.NotFound(c, "claim not found")
			return
		}
		response.Error(c, http.StatusInternalServerError,
			xerrors.MessageOrDefault(result.Err, "delete failed"), result.Err, result)
		return
	}

	response.Success(c, http.StatusOK, "claim deleted", result)
}

// Document renders and serves the confirmation PDF.
func (h *ClaimHandler) Document(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	id, ok := claimID(c)
	if !ok {
		return
	}

	detail, err := h.claimService.Detail(c.Request.Context(), category, tenantID, id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "claim not found")
			return
		}
		response.Error(c, http.StatusInternalServerError,
			xerrors.DisplayMessage(err, category.FetchErrorMessage()), err)
		return
	}

	signature, err := h.claimService.SignatureImage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, claimsvc.MsgSignatureFetch, err)
		return
	}

	// A missing logo file degrades to a document without one.
	var logo []byte
	if detail.Logo != "" {
		if data, err := os.ReadFile(filepath.Join(h.logoDir, detail.Logo+".png")); err == nil {
			logo = data
		} else {
			h.logger.Warn("logo file not found", zap.String("logo", detail.Logo))
		}
	}

	pdf, err := h.documentService.Render(category, detail.Claim, signature, logo)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to render document", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ImageURL issues a fresh short-lived download URL for one damage photo.
func (h *ClaimHandler) ImageURL(c *gin.Context) {
	category := middleware.MustGetCategory(c)
	tenantID := middleware.MustGetTenantID(c)

	id, ok := claimID(c)
	if !ok {
		return
	}
	name := c.Param("name")
	if name == "" || name != filepath.Base(name) {
		response.Error(c, http.StatusBadRequest, "invalid image name", nil)
		return
	}

	url, err := h.claimService.ImageURL(c.Request.Context(), category, tenantID, id, name)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "claim not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, claimsvc.MsgImageDownload, err)
		return
	}

	response.Success(c, http.StatusOK, "image url issued", gin.H{
		"name": name,
		"url":  url,
	})
}

// claimID validates the :id path segment. Claim ids are UUIDs.
func claimID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid claim id", err)
		return "", false
	}
	return id, true
}

// parseCriteria reads the filter query parameters. Dates use YYYY-MM-DD.
func parseCriteria(c *gin.Context) (claim.Criteria, error) {
	var criteria claim.Criteria

	if s := c.Query("status"); s != "" {
		status, err := claim.ParseStatus(s)
		if err != nil {
			return criteria, err
		}
		criteria.Status = status
	}
	criteria.RegistrationNumber = c.Query("regnr")
	criteria.Customer = c.Query("customer")

	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return criteria, err
		}
		criteria.From = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return criteria, err
		}
		criteria.To = t
	}
	return criteria, nil
}
