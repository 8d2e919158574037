package task

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
	taskerrors "github.com/mattForge/OzoneForgePlanner/internal/task/errors"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	GetAllByOrg(ctx context.Context, orgID string) ([]TaskResponse, error)
	// By-id operations are scoped to the active organization; a task
	// belonging to another org reads as NotFound.
	GetByID(ctx context.Context, orgID, id string) (TaskResponse, error)
	Create(ctx context.Context, orgID string, req CreateTaskRequest) (TaskResponse, error)
	Update(ctx context.Context, orgID, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, orgID, id string) error
}

type service struct {
	repo   Repository
	orgs   organization.Service
	logger *zap.Logger
}

func NewService(repo Repository, orgs organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, orgs: orgs, logger: l}
}

func (s *service) GetAllByOrg(ctx context.Context, orgID string) ([]TaskResponse, error) {
	tasks, err := s.repo.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = mapToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (TaskResponse, error) {
	t, err := s.findScoped(ctx, orgID, id)
	if err != nil {
		return TaskResponse{}, err
	}
	return mapToResponse(t), nil
}

func (s *service) findScoped(ctx context.Context, orgID, id string) (Task, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return Task{}, taskerrors.ErrTaskNotFound
		}
		return Task{}, err
	}
	if t.OrgID != orgID {
		return Task{}, taskerrors.ErrTaskNotFound
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, orgID string, req CreateTaskRequest) (TaskResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskTodo
	}
	if !status.Valid() {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}

	priority := domain.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}

	t := Task{
		ID:          store.NewID("task"),
		Title:       req.Title,
		Description: req.Description,
		OrgID:       orgID,
		TeamID:      req.TeamID,
		ProjectID:   req.ProjectID,
		AssigneeIDs: req.AssigneeIDs,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		l.Error("failed to create task", zap.Error(err))
		return TaskResponse{}, err
	}

	s.orgs.AppendLog(ctx, orgID, "TASK", t.Title+" created")
	l.Info("task created", zap.String("task_id", t.ID), zap.String("org_id", orgID))
	return mapToResponse(t), nil
}

func (s *service) Update(ctx context.Context, orgID, id string, req UpdateTaskRequest) (TaskResponse, error) {
	if req.Status != nil && !domain.TaskStatus(*req.Status).Valid() {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}
	if req.Priority != nil && !domain.TaskPriority(*req.Priority).Valid() {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}

	if _, err := s.findScoped(ctx, orgID, id); err != nil {
		return TaskResponse{}, err
	}

	t, err := s.repo.Update(ctx, id, func(t Task) Task {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.TeamID != nil {
			t.TeamID = *req.TeamID
		}
		if req.ProjectID != nil {
			t.ProjectID = *req.ProjectID
		}
		if req.AssigneeIDs != nil {
			t.AssigneeIDs = *req.AssigneeIDs
		}
		if req.Status != nil {
			t.Status = domain.TaskStatus(*req.Status)
		}
		if req.Priority != nil {
			t.Priority = domain.TaskPriority(*req.Priority)
		}
		if req.DueDate != nil {
			t.DueDate = *req.DueDate
		}
		return t
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}
	return mapToResponse(t), nil
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if t, err := s.repo.FindByID(ctx, id); err == nil {
		if t.OrgID != orgID {
			return taskerrors.ErrTaskNotFound
		}
		s.orgs.AppendLog(ctx, orgID, "TASK", t.Title+" removed")
	}

	s.repo.Delete(ctx, id)
	l.Info("task deleted", zap.String("task_id", id))
	return nil
}

func mapToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		OrgID:       t.OrgID,
		TeamID:      t.TeamID,
		ProjectID:   t.ProjectID,
		AssigneeIDs: t.AssigneeIDs,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
	}
}
