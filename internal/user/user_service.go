package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/credential"
	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
	usererrors "github.com/mattForge/OzoneForgePlanner/internal/user/errors"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock

type Service interface {
	GetAllByOrg(ctx context.Context, orgID string) ([]UserResponse, error)
	GetAdmins(ctx context.Context) ([]UserResponse, error)

	// GetByID resolves a user. A non-empty orgID restricts the lookup to
	// members of that organization; others read as NotFound.
	GetByID(ctx context.Context, orgID, id string) (UserResponse, error)

	// Create provisions a MEMBER or EXECUTIVE inside the active org. When
	// the draft omits a password a one-time key is issued: the key is
	// returned exactly once and the account is gated until rotation.
	Create(ctx context.Context, orgID string, req CreateUserRequest) (CreatedUserResponse, error)
	// CreateAdmin provisions an ADMIN, possibly mapped to several orgs.
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (CreatedUserResponse, error)

	// Update patches a user. With a non-empty orgID the edit is org
	// scoped: only MEMBER/EXECUTIVE targets inside that org are
	// addressable, role patches stay within MEMBER/EXECUTIVE and
	// membership patches are refused. Platform scope (empty orgID) may
	// additionally grant ADMIN; SUPER_USER is never grantable.
	Update(ctx context.Context, orgID, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, orgID, id string) error

	// ResetSecurityKey replaces the password with a fresh one-time key and
	// re-arms the rotation gate. The previous password stops working.
	ResetSecurityKey(ctx context.Context, orgID, id string) (ResetKeyResponse, error)

	// UpdateStatus switches the caller's work status. Office and WFH
	// transitions append an attendance record; Leave does not.
	UpdateStatus(ctx context.Context, userID, orgID string, status domain.WorkStatus) (UserResponse, error)
}

type service struct {
	repo       Repository
	attendance attendance.Service
	orgs       organization.Service
	logger     *zap.Logger
}

func NewService(repo Repository, att attendance.Service, orgs organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, attendance: att, orgs: orgs, logger: l}
}

func (s *service) GetAllByOrg(ctx context.Context, orgID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetAdmins(ctx context.Context) ([]UserResponse, error) {
	admins, err := s.repo.FindAllByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(admins), nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (UserResponse, error) {
	u, err := s.findScoped(ctx, orgID, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(u), nil
}

// findScoped resolves a user within the given org scope. An empty orgID
// is platform scope and skips the membership check. Out-of-scope users
// read as NotFound so ids cannot be probed across organizations.
func (s *service) findScoped(ctx context.Context, orgID, id string) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return User{}, usererrors.ErrUserNotFound
		}
		return User{}, err
	}
	if orgID != "" {
		if !u.MemberOf(orgID) {
			return User{}, usererrors.ErrUserNotFound
		}
		if u.Role != domain.RoleMember && u.Role != domain.RoleExecutive {
			return User{}, usererrors.ErrUserNotFound
		}
	}
	return u, nil
}

func (s *service) Create(ctx context.Context, orgID string, req CreateUserRequest) (CreatedUserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	role := domain.Role(req.Role)
	if role != domain.RoleMember && role != domain.RoleExecutive {
		return CreatedUserResponse{}, usererrors.ErrInvalidRole
	}

	orgIDs := req.OrgIDs
	if len(orgIDs) == 0 {
		orgIDs = []string{orgID}
	}

	return s.provision(ctx, l, provisionSpec{
		idPrefix:  "user",
		firstName: req.FirstName,
		lastName:  req.LastName,
		email:     req.Email,
		password:  req.Password,
		role:      role,
		orgIDs:    orgIDs,
		teamID:    req.TeamID,
	})
}

func (s *service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (CreatedUserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	return s.provision(ctx, l, provisionSpec{
		idPrefix:  "admin",
		firstName: req.FirstName,
		lastName:  req.LastName,
		email:     req.Email,
		role:      domain.RoleAdmin,
		orgIDs:    req.OrgIDs,
	})
}

type provisionSpec struct {
	idPrefix  string
	firstName string
	lastName  string
	email     string
	password  string
	role      domain.Role
	orgIDs    []string
	teamID    string
}

func (s *service) provision(ctx context.Context, l *zap.Logger, spec provisionSpec) (CreatedUserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, spec.email); err == nil {
		return CreatedUserResponse{}, usererrors.ErrUserAlreadyExists
	}

	secret := spec.password
	oneTimeKey := ""
	if secret == "" {
		oneTimeKey = credential.GenerateOTP()
		secret = oneTimeKey
	}

	hashed, err := credential.Hash(secret)
	if err != nil {
		l.Error("failed to hash credential", zap.Error(err))
		return CreatedUserResponse{}, err
	}

	u := User{
		ID:                 store.NewID(spec.idPrefix),
		FirstName:          spec.firstName,
		LastName:           spec.lastName,
		Name:               DeriveName(spec.firstName, spec.lastName),
		Email:              NormalizeEmail(spec.email),
		Password:           hashed,
		Role:               spec.role,
		OrgIDs:             spec.orgIDs,
		TeamID:             spec.teamID,
		Status:             domain.StatusOffice,
		MustChangePassword: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return CreatedUserResponse{}, usererrors.ErrUserAlreadyExists
	}

	for _, oid := range u.OrgIDs {
		s.orgs.AppendLog(ctx, oid, "USER", u.Name+" added to registry")
	}

	l.Info("user created",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return CreatedUserResponse{User: mapToResponse(u), OneTimeKey: oneTimeKey}, nil
}

func (s *service) Update(ctx context.Context, orgID, id string, req UpdateUserRequest) (UserResponse, error) {
	if req.Role != nil {
		role := domain.Role(*req.Role)
		// SUPER_USER accounts exist only from provisioning at boot; no
		// edit path mints one.
		if !role.Valid() || role == domain.RoleSuperUser {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		if orgID != "" && role != domain.RoleMember && role != domain.RoleExecutive {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
	}

	if orgID != "" {
		if _, err := s.findScoped(ctx, orgID, id); err != nil {
			return UserResponse{}, err
		}
		if req.OrgIDs != nil {
			return UserResponse{}, usererrors.ErrMembershipScope
		}
	}

	u, err := s.repo.Update(ctx, id, func(u User) User {
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.Email != nil {
			u.Email = NormalizeEmail(*req.Email)
		}
		if req.Role != nil {
			u.Role = domain.Role(*req.Role)
		}
		if req.TeamID != nil {
			u.TeamID = *req.TeamID
		}
		if req.OrgIDs != nil {
			u.OrgIDs = *req.OrgIDs
		}
		u.Name = DeriveName(u.FirstName, u.LastName)
		return u
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(u), nil
}

// Delete removes the user only; team leads and task assignments keep
// their dangling references and are filtered out at query time. Deleting
// an already-absent id stays a no-op, but an out-of-scope target is
// NotFound rather than silently removed.
func (s *service) Delete(ctx context.Context, orgID, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, id)
	if err == nil {
		if orgID != "" {
			if _, err := s.findScoped(ctx, orgID, id); err != nil {
				return err
			}
		}
		s.orgs.AppendLog(ctx, orgID, "USER", u.Name+" removed from registry")
	}

	s.repo.Delete(ctx, id)
	l.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) ResetSecurityKey(ctx context.Context, orgID, id string) (ResetKeyResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if orgID != "" {
		if _, err := s.findScoped(ctx, orgID, id); err != nil {
			return ResetKeyResponse{}, err
		}
	}

	otp := credential.GenerateOTP()
	hashed, err := credential.Hash(otp)
	if err != nil {
		l.Error("failed to hash one-time key", zap.Error(err))
		return ResetKeyResponse{}, err
	}

	u, err := s.repo.Update(ctx, id, func(u User) User {
		u.Password = hashed
		u.MustChangePassword = true
		return u
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return ResetKeyResponse{}, usererrors.ErrUserNotFound
		}
		return ResetKeyResponse{}, err
	}

	l.Info("security key reset", zap.String("user_id", id))
	return ResetKeyResponse{UserID: u.ID, Name: u.Name, OneTimeKey: otp}, nil
}

func (s *service) UpdateStatus(ctx context.Context, userID, orgID string, status domain.WorkStatus) (UserResponse, error) {
	if !status.Valid() {
		return UserResponse{}, usererrors.ErrInvalidStatus
	}

	u, err := s.repo.Update(ctx, userID, func(u User) User {
		u.Status = status
		return u
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if orgID == "" {
		if len(u.OrgIDs) == 0 {
			return UserResponse{}, usererrors.ErrNoOrganization
		}
		orgID = u.OrgIDs[0]
	}

	// Leave appends no attendance record; only working statuses
	// credit hours.
	if status != domain.StatusLeave {
		if _, err := s.attendance.Track(ctx, u.ID, orgID, status); err != nil {
			return UserResponse{}, err
		}
	}

	return mapToResponse(u), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		OrgIDs:             u.OrgIDs,
		TeamID:             u.TeamID,
		Status:             string(u.Status),
		MustChangePassword: u.MustChangePassword,
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
