package organization

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	organizationerrors "github.com/mattForge/OzoneForgePlanner/internal/organization/errors"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
)

// seedLogEntry is written when a new organization is created without an
// explicit log history.
const seedLogEntry = "[SYS] Initialized"

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Delete(ctx context.Context, id string) error
	GetLogs(ctx context.Context, id string) ([]string, error)

	// AppendLog adds a "[SCOPE] message" line to the organization's audit
	// trail. Best effort: appending to a deleted organization is a no-op,
	// so lifecycle operations never fail on a dangling org reference.
	AppendLog(ctx context.Context, id, scope, message string)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]OrganizationResponse, len(orgs))
	for i, o := range orgs {
		resp[i] = mapToResponse(o)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrganizationResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return mapToResponse(o), nil
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	logs := req.Logs
	if len(logs) == 0 {
		logs = []string{seedLogEntry}
	}

	o := Organization{
		ID:       store.NewID("org"),
		Name:     req.Name,
		Details:  req.Details,
		AdminIDs: req.AdminIDs,
		Logs:     logs,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		l.Error("failed to create organization", zap.Error(err))
		return OrganizationResponse{}, organizationerrors.ErrOrganizationExists
	}

	l.Info("organization created", zap.String("org_id", o.ID), zap.String("name", o.Name))
	return mapToResponse(o), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	o, err := s.repo.Update(ctx, id, func(o Organization) Organization {
		if req.Name != nil {
			o.Name = *req.Name
		}
		if req.Details != nil {
			o.Details = *req.Details
		}
		return o
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return OrganizationResponse{}, organizationerrors.ErrOrganizationNotFound
		}
		return OrganizationResponse{}, err
	}
	return mapToResponse(o), nil
}

// Delete removes the organization only. Dependent users, teams and tasks
// keep their references; queries treat the dangling ids as unknown.
func (s *service) Delete(ctx context.Context, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)
	s.repo.Delete(ctx, id)
	l.Info("organization deleted", zap.String("org_id", id))
	return nil
}

func (s *service) GetLogs(ctx context.Context, id string) ([]string, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, organizationerrors.ErrOrganizationNotFound
		}
		return nil, err
	}
	return o.Logs, nil
}

func (s *service) AppendLog(ctx context.Context, id, scope, message string) {
	entry := fmt.Sprintf("[%s] %s", scope, message)
	_, err := s.repo.Update(ctx, id, func(o Organization) Organization {
		o.Logs = append(o.Logs, entry)
		return o
	})
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to append org log",
			zap.String("org_id", id), zap.Error(err))
	}
}

func mapToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:       o.ID,
		Name:     o.Name,
		Details:  o.Details,
		AdminIDs: o.AdminIDs,
		Logs:     o.Logs,
	}
}
