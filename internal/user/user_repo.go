package user

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (User, error)
	// FindByEmail matches on the normalized (lowercased, trimmed) form.
	FindByEmail(ctx context.Context, email string) (User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindAllByOrg(ctx context.Context, orgID string) ([]User, error)
	FindAllByRole(ctx context.Context, role domain.Role) ([]User, error)
	Update(ctx context.Context, id string, mutate func(User) User) (User, error)
	Delete(ctx context.Context, id string)
}

type repository struct {
	col *store.Collection[User]
}

func NewRepository() Repository {
	return &repository{col: store.NewCollection[User]()}
}

func (r *repository) Create(ctx context.Context, u User) error {
	return r.col.Insert(u)
}

func (r *repository) FindByID(ctx context.Context, id string) (User, error) {
	return r.col.Get(id)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	normalized := NormalizeEmail(email)
	matches := r.col.List(func(u User) bool {
		return NormalizeEmail(u.Email) == normalized
	})
	if len(matches) == 0 {
		var zero User
		return zero, apperror.ErrNotFound
	}
	return matches[0], nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	return r.col.List(), nil
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string) ([]User, error) {
	return r.col.List(func(u User) bool { return u.MemberOf(orgID) }), nil
}

func (r *repository) FindAllByRole(ctx context.Context, role domain.Role) ([]User, error) {
	return r.col.List(func(u User) bool { return u.Role == role }), nil
}

func (r *repository) Update(ctx context.Context, id string, mutate func(User) User) (User, error) {
	return r.col.Update(id, mutate)
}

func (r *repository) Delete(ctx context.Context, id string) {
	r.col.Remove(id)
}
