package organization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	organizationerrors "github.com/mattForge/OzoneForgePlanner/internal/organization/errors"
)

func newTestService() (Service, Repository) {
	repo := NewRepository()
	return NewService(repo), repo
}

func TestService_Create_SeedsLog(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrganizationRequest{
		Name:    "Helios",
		Details: "Solar analytics",
	})
	assert.NoError(t, err)
	assert.Contains(t, created.ID, "org-")
	assert.Equal(t, []string{"[SYS] Initialized"}, created.Logs)
}

func TestService_Create_KeepsSuppliedLogs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrganizationRequest{
		Name: "Helios",
		Logs: []string{"[SYS] Imported"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"[SYS] Imported"}, created.Logs)
}

func TestService_Update_MissingSignalsNotFound(t *testing.T) {
	svc, _ := newTestService()
	name := "Renamed"

	_, err := svc.Update(context.Background(), "org-missing", UpdateOrganizationRequest{Name: &name})
	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
}

func TestService_Delete_IdempotentAndNoCascade(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrganizationRequest{Name: "Helios"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.NoError(t, svc.Delete(ctx, "never-existed"))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
}

func TestService_AppendLog(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrganizationRequest{Name: "Helios"})
	assert.NoError(t, err)

	svc.AppendLog(ctx, created.ID, "TEAM", "Forge Dev initialized")

	logs, err := svc.GetLogs(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "[TEAM] Forge Dev initialized", logs[len(logs)-1])

	// Appending to a deleted org must not panic or error out callers.
	assert.NoError(t, svc.Delete(ctx, created.ID))
	svc.AppendLog(ctx, created.ID, "TEAM", "ghost entry")
}
