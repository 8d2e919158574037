package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	autherrors "github.com/mattForge/OzoneForgePlanner/internal/auth/errors"
	"github.com/mattForge/OzoneForgePlanner/internal/credential"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/token"
	"github.com/mattForge/OzoneForgePlanner/internal/user"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	FinalizeRotation(ctx context.Context, userID string, req RotateRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !credential.Compare(u.Password, req.Password) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// A pending one-time key authenticates but does not open a session.
	// The caller gets a short-lived rotation token instead.
	if u.MustChangePassword {
		rotation, err := token.Generate(u.ID, string(u.Role), nil, token.PurposeRotation, token.RotationTTL)
		if err != nil {
			return LoginResponse{}, err
		}

		l.Info("login deferred pending credential rotation", zap.String("user_id", u.ID))
		return LoginResponse{
			RotationRequired: true,
			RotationToken:    rotation,
		}, nil
	}

	res, err := s.openSession(u)
	if err != nil {
		return LoginResponse{}, err
	}

	l.Info("user logged in", zap.String("user_id", u.ID))
	return res, nil
}

func (s *service) FinalizeRotation(ctx context.Context, userID string, req RotateRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return LoginResponse{}, token.ErrInvalidToken
		}
		return LoginResponse{}, err
	}

	if !current.MustChangePassword {
		return LoginResponse{}, autherrors.ErrRotationNotPending
	}

	hashed, err := credential.Hash(req.NewPassword)
	if err != nil {
		return LoginResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to secure credential", 500)
	}

	u, err := s.users.Update(ctx, userID, func(u user.User) user.User {
		u.Password = hashed
		u.MustChangePassword = false
		return u
	})
	if err != nil {
		return LoginResponse{}, err
	}

	res, err := s.openSession(u)
	if err != nil {
		return LoginResponse{}, err
	}

	l.Info("credential rotated, session opened", zap.String("user_id", u.ID))
	return res, nil
}

func (s *service) Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error) {
	claims, err := token.Parse(req.RefreshToken)
	if err != nil {
		return RefreshResponse{}, err
	}
	if claims.Purpose != token.PurposeRefresh {
		return RefreshResponse{}, token.ErrInvalidToken
	}

	// Re-read the account so a deleted user or changed memberships do
	// not survive through refresh.
	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return RefreshResponse{}, token.ErrInvalidToken
	}
	if u.MustChangePassword {
		return RefreshResponse{}, token.ErrInvalidToken
	}

	access, err := token.Generate(u.ID, string(u.Role), u.OrgIDs, token.PurposeSession, token.SessionTTL)
	if err != nil {
		return RefreshResponse{}, err
	}

	return RefreshResponse{AccessToken: access}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapProfile(u), nil
}

func (s *service) openSession(u user.User) (LoginResponse, error) {
	access, err := token.Generate(u.ID, string(u.Role), u.OrgIDs, token.PurposeSession, token.SessionTTL)
	if err != nil {
		return LoginResponse{}, err
	}

	refresh, err := token.Generate(u.ID, string(u.Role), u.OrgIDs, token.PurposeRefresh, token.RefreshTTL)
	if err != nil {
		return LoginResponse{}, err
	}

	profile := mapProfile(u)
	return LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &profile,
	}, nil
}

func mapProfile(u user.User) user.UserResponse {
	return user.UserResponse{
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
