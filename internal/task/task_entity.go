package task

import "github.com/mattForge/OzoneForgePlanner/internal/domain"

type Task struct {
	ID          string
	Title       string
	Description string
	OrgID       string
	TeamID      string
	ProjectID   string
	AssigneeIDs []string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     string
}

func (t Task) EntityID() string { return t.ID }

func (t Task) TenantOrg() string { return t.OrgID }

// AssignedTo reports whether the task is assigned to the user.
func (t Task) AssignedTo(userID string) bool {
	for _, id := range t.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}
