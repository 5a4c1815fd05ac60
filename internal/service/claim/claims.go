// internal/service/claim/claims.go
package claim

import (
	"context"
	"time"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"
	xerrors "skadeportal-service/internal/pkg/errors"
	"skadeportal-service/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Swedish messages for the detail view's sub-fetch failures. Each sub-fetch
// failing blocks the whole view but tells the user what broke.
const (
	MsgSignatureFetch = "Något gick fel vid hämtning av signaturen"
	MsgLogoFetch      = "Något gick fel vid hämtning av logon"
	MsgPhotosFetch    = "Något gick fel vid hämtning av bilder"
	MsgImageDownload  = "Kunde inte ladda ner bilden"
	MsgStatusUpdate   = "Kunde inte uppdatera status"
)

// Repository is the claim persistence boundary.
type Repository interface {
	ListByTenant(ctx context.Context, category claim.Category, tenantID string) ([]*claim.Claim, error)
	FindByID(ctx context.Context, category claim.Category, tenantID, id string) (*claim.Claim, error)
	UpdateStatus(ctx context.Context, category claim.Category, tenantID, id string, status claim.Status) error
	Delete(ctx context.Context, category claim.Category, tenantID, id string) error
}

// TenantReader resolves the tenant profile for the logo sub-fetch.
type TenantReader interface {
	FindByID(ctx context.Context, id string) (*tenant.Company, error)
}

// Publisher pushes claim events to connected back-office clients.
type Publisher interface {
	Publish(tenantID string, event interface{})
}

// Buckets names the artifact buckets.
type Buckets struct {
	Signatures   string
	DamageImages string
}

// StatusChangedEvent and ClaimDeletedEvent are pushed over the event stream.
type StatusChangedEvent struct {
	Type     string         `json:"type"`
	Category claim.Category `json:"category"`
	ClaimID  string         `json:"claim_id"`
	Status   claim.Status   `json:"status"`
}

type ClaimDeletedEvent struct {
	Type     string         `json:"type"`
	Category claim.Category `json:"category"`
	ClaimID  string         `json:"claim_id"`
}

// ClaimService owns the list, detail, mutation and deletion flows.
type ClaimService struct {
	repo    Repository
	tenants TenantReader
	store   storage.ObjectStore
	events  Publisher
	buckets Buckets
	urlTTL  time.Duration
	logger  *zap.Logger
}

func NewClaimService(
	repo Repository,
	tenants TenantReader,
	store storage.ObjectStore,
	events Publisher,
	buckets Buckets,
	urlTTL time.Duration,
	logger *zap.Logger,
) *ClaimService {
	return &ClaimService{
		repo:    repo,
		tenants: tenants,
		store:   store,
		events:  events,
		buckets: buckets,
		urlTTL:  urlTTL,
		logger:  logger,
	}
}

// List fetches the tenant's full collection newest-first and filters it in
// memory. The result carries the unfiltered total and, when the visible set
// is empty, the matching empty-state message.
func (s *ClaimService) List(ctx context.Context, category claim.Category, tenantID string, criteria claim.Criteria) (*claim.ListResult, error) {
	fetched, err := s.repo.ListByTenant(ctx, category, tenantID)
	if err != nil {
		return nil, xerrors.Localize(category.FetchErrorMessage(), err)
	}

	visible := claim.Filter(fetched, criteria)
	return &claim.ListResult{
		Claims:  visible,
		Total:   len(fetched),
		Message: claim.EmptyStateMessage(category, len(fetched), len(visible)),
	}, nil
}

// Detail assembles everything the detail view needs: the record, a presigned
// signature URL, the tenant logo, and (for glass) each damage photo resolved
// to a presigned URL. The fetches race; the first failure cancels the rest
// and nothing partial is returned.
func (s *ClaimService) Detail(ctx context.Context, category claim.Category, tenantID, id string) (*claim.Detail, error) {
	var (
		record *claim.Claim
		sigURL string
		logo   string
		photos []claim.PhotoRef
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := s.repo.FindByID(gctx, category, tenantID, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return err
			}
			return xerrors.Localize(category.FetchErrorMessage(), err)
		}
		record = c
		return nil
	})

	g.Go(func() error {
		url, err := s.store.SignedURL(gctx, s.buckets.Signatures, storage.SignatureKey(id), s.urlTTL)
		if err != nil {
			return xerrors.Localize(MsgSignatureFetch, err)
		}
		sigURL = url
		return nil
	})

	g.Go(func() error {
		company, err := s.tenants.FindByID(gctx, tenantID)
		if err != nil {
			return xerrors.Localize(MsgLogoFetch, err)
		}
		logo = company.Logo
		return nil
	})

	if category.HasPhotos() {
		g.Go(func() error {
			refs, err := s.listPhotoRefs(gctx, id)
			if err != nil {
				return xerrors.Localize(MsgPhotosFetch, err)
			}
			photos = refs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &claim.Detail{
		Claim:        record,
		SignatureURL: sigURL,
		Logo:         logo,
		Photos:       photos,
	}, nil
}

func (s *ClaimService) listPhotoRefs(ctx context.Context, claimID string) ([]claim.PhotoRef, error) {
	names, err := s.store.List(ctx, s.buckets.DamageImages, storage.PhotoPrefix(claimID))
	if err != nil {
		return nil, err
	}

	refs := make([]claim.PhotoRef, 0, len(names))
	for _, name := range names {
		url, err := s.store.SignedURL(ctx, s.buckets.DamageImages, storage.PhotoKey(claimID, name), s.urlTTL)
		if err != nil {
			return nil, err
		}
		refs = append(refs, claim.PhotoRef{Name: name, URL: url})
	}
	return refs, nil
}

// UpdateStatus writes the single status field. The caller merges the new
// status into its copy of the record; no re-fetch happens here.
func (s *ClaimService) UpdateStatus(ctx context.Context, category claim.Category, tenantID, id string, status claim.Status) error {
	if err := s.repo.UpdateStatus(ctx, category, tenantID, id, status); err != nil {
		return xerrors.Localize(MsgStatusUpdate, err)
	}

	s.logger.Info("claim status updated",
		zap.String("claim_id", id),
		zap.String("category", string(category)),
		zap.String("status", string(status)),
	)

	if s.events != nil {
		s.events.Publish(tenantID, StatusChangedEvent{
			Type:     "status_changed",
			Category: category,
			ClaimID:  id,
			Status:   status,
		})
	}
	return nil
}

// ImageURL issues a fresh presigned URL for one named damage photo.
func (s *ClaimService) ImageURL(ctx context.Context, category claim.Category, tenantID, id, name string) (string, error) {
	// Confirm the claim exists under this tenant before handing out a URL.
	if _, err := s.repo.FindByID(ctx, category, tenantID, id); err != nil {
		return "", err
	}

	url, err := s.store.SignedURL(ctx, s.buckets.DamageImages, storage.PhotoKey(id, name), s.urlTTL)
	if err != nil {
		return "", xerrors.Localize(MsgImageDownload, err)
	}
	return url, nil
}

// SignatureImage downloads the raw signature bytes for document rendering.
func (s *ClaimService) SignatureImage(ctx context.Context, claimID string) ([]byte, error) {
	data, err := s.store.Download(ctx, s.buckets.Signatures, storage.SignatureKey(claimID))
	if err != nil {
		return nil, xerrors.Localize(MsgSignatureFetch, err)
	}
	return data, nil
}
