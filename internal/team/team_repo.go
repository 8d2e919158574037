package team

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/store"
	"github.com/mattForge/OzoneForgePlanner/internal/tenant"
)

//go:generate mockgen -source=team_repo.go -destination=mock/team_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t Team) error
	FindByID(ctx context.Context, id string) (Team, error)
	FindAllByOrg(ctx context.Context, orgID string) ([]Team, error)
	Update(ctx context.Context, id string, mutate func(Team) Team) (Team, error)
	Delete(ctx context.Context, id string)
}

type repository struct {
	col *store.Collection[Team]
}

func NewRepository() Repository {
	return &repository{col: store.NewCollection[Team]()}
}

func (r *repository) Create(ctx context.Context, t Team) error {
	return r.col.Insert(t)
}

func (r *repository) FindByID(ctx context.Context, id string) (Team, error) {
	return r.col.Get(id)
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string) ([]Team, error) {
	return r.col.List(tenant.Scope[Team](orgID)), nil
}

func (r *repository) Update(ctx context.Context, id string, mutate func(Team) Team) (Team, error) {
	return r.col.Update(id, mutate)
}

func (r *repository) Delete(ctx context.Context, id string) {
	r.col.Remove(id)
}
