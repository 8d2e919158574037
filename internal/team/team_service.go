package team

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
	teamerrors "github.com/mattForge/OzoneForgePlanner/internal/team/errors"
)

// LeadResolver resolves a lead id to a display name. Dangling lead ids
// resolve to false and the response simply omits the name.
type LeadResolver interface {
	UserName(ctx context.Context, id string) (string, bool)
}

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	GetAllByOrg(ctx context.Context, orgID string) ([]TeamResponse, error)
	// By-id operations are scoped to the active organization; a team
	// belonging to another org reads as NotFound.
	GetByID(ctx context.Context, orgID, id string) (TeamResponse, error)
	Create(ctx context.Context, orgID string, req CreateTeamRequest) (TeamResponse, error)
	Update(ctx context.Context, orgID, id string, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, orgID, id string) error
}

type service struct {
	repo   Repository
	leads  LeadResolver
	orgs   organization.Service
	logger *zap.Logger
}

func NewService(repo Repository, leads LeadResolver, orgs organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{repo: repo, leads: leads, orgs: orgs, logger: l}
}

func (s *service) GetAllByOrg(ctx context.Context, orgID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	res := make([]TeamResponse, len(teams))
	for i, t := range teams {
		res[i] = s.mapToResponse(ctx, t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (TeamResponse, error) {
	t, err := s.findScoped(ctx, orgID, id)
	if err != nil {
		return TeamResponse{}, err
	}
	return s.mapToResponse(ctx, t), nil
}

func (s *service) findScoped(ctx context.Context, orgID, id string) (Team, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return Team{}, teamerrors.ErrTeamNotFound
		}
		return Team{}, err
	}
	if t.OrgID != orgID {
		return Team{}, teamerrors.ErrTeamNotFound
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, orgID string, req CreateTeamRequest) (TeamResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	t := Team{
		ID:     store.NewID("team"),
		Name:   req.Name,
		OrgID:  orgID,
		LeadID: req.LeadID,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		l.Error("failed to create team", zap.Error(err))
		return TeamResponse{}, err
	}

	s.orgs.AppendLog(ctx, orgID, "TEAM", t.Name+" initialized")
	l.Info("team created", zap.String("team_id", t.ID), zap.String("org_id", orgID))
	return s.mapToResponse(ctx, t), nil
}

func (s *service) Update(ctx context.Context, orgID, id string, req UpdateTeamRequest) (TeamResponse, error) {
	if _, err := s.findScoped(ctx, orgID, id); err != nil {
		return TeamResponse{}, err
	}

	t, err := s.repo.Update(ctx, id, func(t Team) Team {
		if req.Name != nil {
			t.Name = *req.Name
		}
		if req.LeadID != nil {
			t.LeadID = *req.LeadID
		}
		return t
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}
	return s.mapToResponse(ctx, t), nil
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if t, err := s.repo.FindByID(ctx, id); err == nil {
		if t.OrgID != orgID {
			return teamerrors.ErrTeamNotFound
		}
		s.orgs.AppendLog(ctx, orgID, "TEAM", t.Name+" disbanded")
	}

	s.repo.Delete(ctx, id)
	l.Info("team deleted", zap.String("team_id", id))
	return nil
}

func (s *service) mapToResponse(ctx context.Context, t Team) TeamResponse {
	resp := TeamResponse{
		ID:     t.ID,
		Name:   t.Name,
		OrgID:  t.OrgID,
		LeadID: t.LeadID,
	}
	if t.LeadID != "" && s.leads != nil {
		if name, ok := s.leads.UserName(ctx, t.LeadID); ok {
			resp.LeadName = name
		}
	}
	return resp
}
