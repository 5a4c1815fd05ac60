// internal/service/claim/delete_saga.go
package claim

import (
	"context"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/storage"

	"go.uber.org/zap"
)

// The deletion flow is a non-atomic three-step saga: signature artifact,
// then damage-photo artifacts, then the claim record. Each step is a
// separate backend call and there is no rollback; a failure after partial
// deletion leaves orphaned state. The saga makes that partial state
// observable instead of hiding it behind a generic error.

// DeleteStep names the step a failed saga stopped at.
type DeleteStep string

const (
	StepListPhotos DeleteStep = "list_photos"
	StepSignature  DeleteStep = "signature"
	StepPhotos     DeleteStep = "photos"
	StepRecord     DeleteStep = "record"
)

// DeleteState is how far the saga got.
type DeleteState string

const (
	DeletePending          DeleteState = "pending"
	DeleteSignatureRemoved DeleteState = "signature_removed"
	DeleteArtifactsRemoved DeleteState = "artifacts_removed"
	DeleteRecordRemoved    DeleteState = "record_removed"
)

// DeleteResult reports the saga outcome. On failure, State shows what was
// already (irreversibly) deleted and FailedStep what broke.
type DeleteResult struct {
	State      DeleteState `json:"state"`
	FailedStep DeleteStep  `json:"failed_step,omitempty"`
	Photos     int         `json:"photos_removed"`

	Err error `json:"-"`
}

// Deleted reports full success.
func (r *DeleteResult) Deleted() bool {
	return r.State == DeleteRecordRemoved
}

// Delete runs the deletion saga for one claim. Order: signature artifact,
// photo artifacts (glass only), claim record. The first failure aborts; the
// raw error is surfaced in the result.
func (s *ClaimService) Delete(ctx context.Context, category claim.Category, tenantID, id string) *DeleteResult {
	result := &DeleteResult{State: DeletePending}

	// Photo names are needed before anything is deleted; nothing has been
	// removed yet if this read fails.
	var photoKeys []string
	if category.HasPhotos() {
		names, err := s.store.List(ctx, s.buckets.DamageImages, storage.PhotoPrefix(id))
		if err != nil {
			result.FailedStep = StepListPhotos
			result.Err = err
			return result
		}
		for _, name := range names {
			photoKeys = append(photoKeys, storage.PhotoKey(id, name))
		}
	}

	// Step 1: signature artifact.
	if err := s.store.Remove(ctx, s.buckets.Signatures, []string{storage.SignatureKey(id)}); err != nil {
		result.FailedStep = StepSignature
		result.Err = err
		return result
	}
	result.State = DeleteSignatureRemoved

	// Step 2: photo artifacts. Skipped for categories without photos.
	if len(photoKeys) > 0 {
		if err := s.store.Remove(ctx, s.buckets.DamageImages, photoKeys); err != nil {
			result.FailedStep = StepPhotos
			result.Err = err
			return result
		}
		result.Photos = len(photoKeys)
	}
	result.State = DeleteArtifactsRemoved

	// Step 3: the claim record, last.
	if err := s.repo.Delete(ctx, category, tenantID, id); err != nil {
		result.FailedStep = StepRecord
		result.Err = err
		return result
	}
	result.State = DeleteRecordRemoved

	s.logger.Info("claim deleted",
		zap.String("claim_id", id),
		zap.String("category", string(category)),
		zap.Int("photos_removed", result.Photos),
	)

	if s.events != nil {
		s.events.Publish(tenantID, ClaimDeletedEvent{
			Type:     "claim_deleted",
			Category: category,
			ClaimID:  id,
		})
	}
	return result
}
