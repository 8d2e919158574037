package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	teamerrors "github.com/mattForge/OzoneForgePlanner/internal/team/errors"
)

type fakeLeads struct {
	names map[string]string
}

func (f *fakeLeads) UserName(ctx context.Context, id string) (string, bool) {
	name, ok := f.names[id]
	return name, ok
}

func newTeamService(leads LeadResolver) (Service, organization.Service) {
	orgSvc := organization.NewService(organization.NewRepository())
	return NewService(NewRepository(), leads, orgSvc), orgSvc
}

func TestService_Create_ResolvesLeadName(t *testing.T) {
	svc, _ := newTeamService(&fakeLeads{names: map[string]string{"user-3": "Charlie Member"}})
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-1", CreateTeamRequest{Name: "Forge Dev", LeadID: "user-3"})
	assert.NoError(t, err)
	assert.Equal(t, "org-1", created.OrgID)
	assert.Equal(t, "Charlie Member", created.LeadName)
}

func TestService_DanglingLeadOmitsName(t *testing.T) {
	svc, _ := newTeamService(&fakeLeads{names: map[string]string{}})
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-1", CreateTeamRequest{Name: "Forge Dev", LeadID: "user-deleted"})
	assert.NoError(t, err)
	assert.Equal(t, "user-deleted", created.LeadID)
	assert.Empty(t, created.LeadName)
}

func TestService_GetAllByOrg_ScopedToActiveOrg(t *testing.T) {
	svc, _ := newTeamService(&fakeLeads{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "org-1", CreateTeamRequest{Name: "Forge Dev"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "org-2", CreateTeamRequest{Name: "Ozone Research"})
	assert.NoError(t, err)

	scoped, err := svc.GetAllByOrg(ctx, "org-2")
	assert.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, "Ozone Research", scoped[0].Name)
}

func TestService_Update_MissingSignalsNotFound(t *testing.T) {
	svc, _ := newTeamService(&fakeLeads{})
	name := "Renamed"

	_, err := svc.Update(context.Background(), "org-1", "team-missing", UpdateTeamRequest{Name: &name})
	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)
}

func TestService_ByIdOperations_ScopedToActiveOrg(t *testing.T) {
	svc, _ := newTeamService(&fakeLeads{})
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-2", CreateTeamRequest{Name: "Ozone Research"})
	assert.NoError(t, err)

	// A foreign team id reads, edits and deletes as NotFound.
	_, err = svc.GetByID(ctx, "org-1", created.ID)
	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)

	name := "Hijacked"
	_, err = svc.Update(ctx, "org-1", created.ID, UpdateTeamRequest{Name: &name})
	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)

	err = svc.Delete(ctx, "org-1", created.ID)
	assert.ErrorIs(t, err, teamerrors.ErrTeamNotFound)

	// The owning org still sees the untouched team.
	got, err := svc.GetByID(ctx, "org-2", created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ozone Research", got.Name)
}

func TestService_Delete_AppendsOrgLog(t *testing.T) {
	leads := &fakeLeads{}
	orgRepo := organization.NewRepository()
	orgSvc := organization.NewService(orgRepo)
	svc := NewService(NewRepository(), leads, orgSvc)
	ctx := context.Background()

	org, err := orgSvc.Create(ctx, organization.CreateOrganizationRequest{Name: "Helios"})
	assert.NoError(t, err)

	created, err := svc.Create(ctx, org.ID, CreateTeamRequest{Name: "Forge Dev"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, org.ID, created.ID))

	logs, err := orgSvc.GetLogs(ctx, org.ID)
	assert.NoError(t, err)
	assert.Contains(t, logs, "[TEAM] Forge Dev initialized")
	assert.Contains(t, logs, "[TEAM] Forge Dev disbanded")
}
