package domain

// Role is a user's platform role. Roles are mutually exclusive and fixed
// at creation except via explicit edit.
type Role string

const (
	RoleSuperUser Role = "SUPER_USER"
	RoleAdmin     Role = "ADMIN"
	RoleExecutive Role = "EXECUTIVE"
	RoleMember    Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperUser, RoleAdmin, RoleExecutive, RoleMember:
		return true
	}
	return false
}

// WorkStatus is a user's current working mode. The wire values are
// display strings, not SCREAMING_CASE like Role.
type WorkStatus string

const (
	StatusOffice WorkStatus = "Office"
	StatusWFH    WorkStatus = "WFH"
	StatusLeave  WorkStatus = "Leave"
)

func (s WorkStatus) Valid() bool {
	switch s {
	case StatusOffice, StatusWFH, StatusLeave:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
