package user

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/credential"
	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	usererrors "github.com/mattForge/OzoneForgePlanner/internal/user/errors"
)

type userFixture struct {
	svc     Service
	repo    Repository
	attRepo attendance.Repository
	orgs    organization.Service
}

func newUserFixture() *userFixture {
	repo := NewRepository()
	attRepo := attendance.NewRepository()
	attSvc := attendance.NewService(attRepo, NewDirectory(repo))
	orgSvc := organization.NewService(organization.NewRepository())

	return &userFixture{
		svc:     NewService(repo, attSvc, orgSvc),
		repo:    repo,
		attRepo: attRepo,
		orgs:    orgSvc,
	}
}

func TestService_Create_IssuesOneTimeKey(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-1", CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      "MEMBER",
	})
	assert.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", created.User.Name)
	assert.True(t, created.User.MustChangePassword)
	assert.Equal(t, []string{"org-1"}, created.User.OrgIDs)

	assert.Len(t, created.OneTimeKey, 6)
	n, err := strconv.Atoi(created.OneTimeKey)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	// Only the hash is stored; the key itself authenticates.
	stored, err := f.repo.FindByID(ctx, created.User.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, created.OneTimeKey, stored.Password)
	assert.True(t, credential.Compare(stored.Password, created.OneTimeKey))
}

func TestService_Create_DuplicateEmailConflicts(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	req := CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "MEMBER"}
	_, err := f.svc.Create(ctx, "org-1", req)
	assert.NoError(t, err)

	// Email matching is case-insensitive; the variant still collides.
	req.Email = "  ADA@Example.com "
	_, err = f.svc.Create(ctx, "org-1", req)
	assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
}

func TestService_Create_RejectsPrivilegedRole(t *testing.T) {
	f := newUserFixture()

	_, err := f.svc.Create(context.Background(), "org-1", CreateUserRequest{
		FirstName: "Eve", LastName: "Intruder", Email: "eve@example.com", Role: "SUPER_USER",
	})
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
}

func TestService_CreateAdmin_MultiOrg(t *testing.T) {
	f := newUserFixture()

	created, err := f.svc.CreateAdmin(context.Background(), CreateAdminRequest{
		FirstName: "Olive", LastName: "Ops", Email: "olive@example.com",
		OrgIDs: []string{"org-1", "org-2"},
	})
	assert.NoError(t, err)
	assert.Contains(t, created.User.ID, "admin-")
	assert.Equal(t, "ADMIN", created.User.Role)
	assert.Equal(t, []string{"org-1", "org-2"}, created.User.OrgIDs)
	assert.NotEmpty(t, created.OneTimeKey)
}

func TestService_Update_RederivesName(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-1", CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "MEMBER",
	})
	assert.NoError(t, err)

	last := "King"
	updated, err := f.svc.Update(ctx, "org-1", created.User.ID, UpdateUserRequest{LastName: &last})
	assert.NoError(t, err)
	assert.Equal(t, "Ada King", updated.Name)
}

func TestService_Update_MissingSignalsNotFound(t *testing.T) {
	f := newUserFixture()
	first := "Ghost"

	_, err := f.svc.Update(context.Background(), "org-1", "user-missing", UpdateUserRequest{FirstName: &first})
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestService_Update_RejectsPrivilegeEscalation(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-1", CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "MEMBER",
	})
	assert.NoError(t, err)
	id := created.User.ID

	// No edit path mints a SUPER_USER, at either scope.
	super := "SUPER_USER"
	_, err = f.svc.Update(ctx, "org-1", id, UpdateUserRequest{Role: &super})
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	_, err = f.svc.Update(ctx, "", id, UpdateUserRequest{Role: &super})
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)

	// Org-scoped edits cannot grant ADMIN either.
	admin := "ADMIN"
	_, err = f.svc.Update(ctx, "org-1", id, UpdateUserRequest{Role: &admin})
	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)

	// Membership changes belong to platform scope.
	orgs := []string{"org-1", "org-9"}
	_, err = f.svc.Update(ctx, "org-1", id, UpdateUserRequest{OrgIDs: &orgs})
	assert.ErrorIs(t, err, usererrors.ErrMembershipScope)

	stored, err := f.repo.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleMember, stored.Role)
	assert.Equal(t, []string{"org-1"}, stored.OrgIDs)
}

func TestService_ByIdOperations_ScopedToActiveOrg(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-2", CreateUserRequest{
		FirstName: "Diana", LastName: "Member", Email: "diana@example.com", Role: "MEMBER",
	})
	assert.NoError(t, err)
	id := created.User.ID

	// Foreign ids read, edit, reset and delete as NotFound.
	_, err = f.svc.GetByID(ctx, "org-1", id)
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)

	first := "Hijacked"
	_, err = f.svc.Update(ctx, "org-1", id, UpdateUserRequest{FirstName: &first})
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)

	_, err = f.svc.ResetSecurityKey(ctx, "org-1", id)
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, "org-1", id), usererrors.ErrUserNotFound)

	got, err := f.svc.GetByID(ctx, "org-2", id)
	assert.NoError(t, err)
	assert.Equal(t, "Diana Member", got.Name)
}

func TestService_OrgScope_DoesNotAddressAdmins(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.CreateAdmin(ctx, CreateAdminRequest{
		FirstName: "Olive", LastName: "Ops", Email: "olive@example.com",
		OrgIDs: []string{"org-1"},
	})
	assert.NoError(t, err)

	// Admin accounts are managed at platform scope only.
	_, err = f.svc.GetByID(ctx, "org-1", created.User.ID)
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)

	got, err := f.svc.GetByID(ctx, "", created.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ADMIN", got.Role)
}

func TestService_ResetSecurityKey_InvalidatesOldPassword(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-1", CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Role: "MEMBER", Password: "original-secret",
	})
	assert.NoError(t, err)

	reset, err := f.svc.ResetSecurityKey(ctx, "org-1", created.User.ID)
	assert.NoError(t, err)
	assert.Len(t, reset.OneTimeKey, 6)

	stored, err := f.repo.FindByID(ctx, created.User.ID)
	assert.NoError(t, err)
	assert.True(t, stored.MustChangePassword)
	assert.False(t, credential.Compare(stored.Password, "original-secret"))
	assert.True(t, credential.Compare(stored.Password, reset.OneTimeKey))
}

func TestService_UpdateStatus_AttendanceAsymmetry(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "org-1", CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "MEMBER",
	})
	assert.NoError(t, err)
	id := created.User.ID

	// Leave leaves no trail.
	res, err := f.svc.UpdateStatus(ctx, id, "org-1", domain.StatusLeave)
	assert.NoError(t, err)
	assert.Equal(t, "Leave", res.Status)

	recs, err := f.attRepo.FindAllByUser(ctx, id)
	assert.NoError(t, err)
	assert.Empty(t, recs)

	// Office and WFH each append one record.
	_, err = f.svc.UpdateStatus(ctx, id, "org-1", domain.StatusOffice)
	assert.NoError(t, err)
	_, err = f.svc.UpdateStatus(ctx, id, "org-1", domain.StatusWFH)
	assert.NoError(t, err)

	recs, err = f.attRepo.FindAllByUser(ctx, id)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, float64(8), recs[0].HoursWorked)
}

func TestService_UpdateStatus_NoOrganization(t *testing.T) {
	f := newUserFixture()
	ctx := context.Background()

	created, err := f.svc.CreateAdmin(ctx, CreateAdminRequest{
		FirstName: "Lone", LastName: "Admin", Email: "lone@example.com",
	})
	assert.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, created.User.ID, "", domain.StatusOffice)
	assert.ErrorIs(t, err, usererrors.ErrNoOrganization)
}
