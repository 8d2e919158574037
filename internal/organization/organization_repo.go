package organization

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/store"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o Organization) error
	FindByID(ctx context.Context, id string) (Organization, error)
	FindAll(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, id string, mutate func(Organization) Organization) (Organization, error)
	Delete(ctx context.Context, id string)
}

type repository struct {
	col *store.Collection[Organization]
}

func NewRepository() Repository {
	return &repository{col: store.NewCollection[Organization]()}
}

func (r *repository) Create(ctx context.Context, o Organization) error {
	return r.col.Insert(o)
}

func (r *repository) FindByID(ctx context.Context, id string) (Organization, error) {
	return r.col.Get(id)
}

func (r *repository) FindAll(ctx context.Context) ([]Organization, error) {
	return r.col.List(), nil
}

func (r *repository) Update(ctx context.Context, id string, mutate func(Organization) Organization) (Organization, error) {
	return r.col.Update(id, mutate)
}

func (r *repository) Delete(ctx context.Context, id string) {
	r.col.Remove(id)
}
