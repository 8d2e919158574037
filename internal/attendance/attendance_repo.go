package attendance

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/store"
	"github.com/mattForge/OzoneForgePlanner/internal/tenant"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	// Create prepends so listings read newest-first.
	Create(ctx context.Context, rec Record) error
	FindAllByOrg(ctx context.Context, orgID string) ([]Record, error)
	FindAllByUser(ctx context.Context, userID string) ([]Record, error)
	FindAll(ctx context.Context) ([]Record, error)
}

type repository struct {
	col *store.Collection[Record]
}

func NewRepository() Repository {
	return &repository{col: store.NewCollection[Record]()}
}

func (r *repository) Create(ctx context.Context, rec Record) error {
	return r.col.InsertFront(rec)
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string) ([]Record, error) {
	return r.col.List(tenant.Scope[Record](orgID)), nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Record, error) {
	return r.col.List(func(rec Record) bool { return rec.UserID == userID }), nil
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	return r.col.List(), nil
}
