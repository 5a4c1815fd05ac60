// internal/service/tenant/entitlement_test.go
package tenant

import (
	"context"
	"errors"
	"testing"

	"skadeportal-service/internal/domain/claim"
	"skadeportal-service/internal/domain/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	company *tenant.Company
	err     error
}

func (r *fakeRepo) FindByUserID(context.Context, string) (*tenant.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.company, nil
}

func (r *fakeRepo) FindByID(context.Context, string) (*tenant.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.company, nil
}

func TestCheckAuthorizedWhenServiceEnabled(t *testing.T) {
	repo := &fakeRepo{company: &tenant.Company{
		ID:       "t1",
		Services: []string{"glas", "keys"},
	}}
	svc := NewService(repo, zap.NewNop())

	decision, company, err := svc.Check(context.Background(), "u1", claim.CategoryGlass)
	require.NoError(t, err)
	assert.Equal(t, tenant.Authorized, decision)
	assert.Equal(t, "t1", company.ID)
}

func TestCheckUnauthorizedWhenServiceMissing(t *testing.T) {
	repo := &fakeRepo{company: &tenant.Company{
		ID:       "t1",
		Services: []string{"glas"},
	}}
	svc := NewService(repo, zap.NewNop())

	decision, company, err := svc.Check(context.Background(), "u1", claim.CategoryKeys)
	require.NoError(t, err)
	assert.Equal(t, tenant.Unauthorized, decision)
	assert.NotNil(t, company)
}

func TestCheckLookupFailureIsDistinctFromDenial(t *testing.T) {
	repo := &fakeRepo{err: errors.New("profile query failed")}
	svc := NewService(repo, zap.NewNop())

	decision, company, err := svc.Check(context.Background(), "u1", claim.CategoryGlass)
	require.Error(t, err)
	assert.Equal(t, tenant.LookupFailed, decision)
	assert.Nil(t, company)
	assert.NotEqual(t, tenant.Unauthorized, decision)
}

func TestCheckEmptyServicesDeniesBothCategories(t *testing.T) {
	repo := &fakeRepo{company: &tenant.Company{ID: "t1"}}
	svc := NewService(repo, zap.NewNop())

	for _, category := range []claim.Category{claim.CategoryGlass, claim.CategoryKeys} {
		decision, _, err := svc.Check(context.Background(), "u1", category)
		require.NoError(t, err)
		assert.Equal(t, tenant.Unauthorized, decision)
	}
}
