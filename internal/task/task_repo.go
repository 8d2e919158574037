package task

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/store"
	"github.com/mattForge/OzoneForgePlanner/internal/tenant"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t Task) error
	FindByID(ctx context.Context, id string) (Task, error)
	FindAllByOrg(ctx context.Context, orgID string) ([]Task, error)
	FindAllByAssignee(ctx context.Context, orgID, userID string) ([]Task, error)
	Update(ctx context.Context, id string, mutate func(Task) Task) (Task, error)
	Delete(ctx context.Context, id string)
}

type repository struct {
	col *store.Collection[Task]
}

func NewRepository() Repository {
	return &repository{col: store.NewCollection[Task]()}
}

func (r *repository) Create(ctx context.Context, t Task) error {
	return r.col.Insert(t)
}

func (r *repository) FindByID(ctx context.Context, id string) (Task, error) {
	return r.col.Get(id)
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string) ([]Task, error) {
	return r.col.List(tenant.Scope[Task](orgID)), nil
}

func (r *repository) FindAllByAssignee(ctx context.Context, orgID, userID string) ([]Task, error) {
	return r.col.List(tenant.Scope[Task](orgID), func(t Task) bool {
		return t.AssignedTo(userID)
	}), nil
}

func (r *repository) Update(ctx context.Context, id string, mutate func(Task) Task) (Task, error) {
	return r.col.Update(id, mutate)
}

func (r *repository) Delete(ctx context.Context, id string) {
	r.col.Remove(id)
}
