package user

import "context"

// nameResolver answers display-name lookups for other packages (team
// leads, metrics). Unknown ids report false instead of erroring.
type nameResolver struct {
	repo Repository
}

func NewNameResolver(repo Repository) *nameResolver {
	return &nameResolver{repo: repo}
}

func (r *nameResolver) UserName(ctx context.Context, id string) (string, bool) {
	u, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return "", false
	}
	return u.Name, true
}
