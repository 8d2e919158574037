package user

import (
	"context"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
)

// directory adapts the user repository to the slim roster view the
// attendance package consumes.
type directory struct {
	repo Repository
}

func NewDirectory(repo Repository) attendance.UserDirectory {
	return &directory{repo: repo}
}

func (d *directory) OrgRoster(ctx context.Context, orgID string) ([]attendance.RosterUser, error) {
	users, err := d.repo.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	roster := make([]attendance.RosterUser, len(users))
	for i, u := range users {
		roster[i] = attendance.RosterUser{ID: u.ID, Name: u.Name, Status: u.Status}
	}
	return roster, nil
}
