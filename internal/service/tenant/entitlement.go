// internal/service/tenant/entitlement.go
package tenant

import (
	"context"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"

	"go.uber.org/zap"
)

// Repository is the tenant lookup the gate needs.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*tenant.Company, error)
	FindByID(ctx context.Context, id string) (*tenant.Company, error)
}

// Service answers entitlement questions: is the user's tenant enabled for a
// claim category. The outcome distinguishes a denied tenant from a failed
// lookup; callers render different messages and skip fetching on both.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Check resolves the user's tenant and gates the category against the
// tenant's enabled services.
func (s *Service) Check(ctx context.Context, userID string, category claim.Category) (tenant.Decision, *tenant.Company, error) {
	company, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("entitlement lookup failed",
			zap.String("user_id", userID),
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return tenant.LookupFailed, nil, err
	}

	if !company.HasService(string(category)) {
		s.logger.Info("entitlement denied",
			zap.String("user_id", userID),
			zap.String("company_id", company.ID),
			zap.String("category", string(category)),
		)
		return tenant.Unauthorized, company, nil
	}

	return tenant.Authorized, company, nil
}

// Profile returns the company a user belongs to.
func (s *Service) Profile(ctx context.Context, userID string) (*tenant.Company, error) {
	return s.repo.FindByUserID(ctx, userID)
}
