package metrics

type TeamEfficiency struct {
	TeamID     string `json:"team_id"`
	Name       string `json:"name"`
	Done       int    `json:"done"`
	Total      int    `json:"total"`
	Efficiency int    `json:"efficiency"` // percent, 0 when the team has no tasks
}

type UserStat struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	CompletedTasks int    `json:"completed_tasks"`
}

type ExecutiveReport struct {
	OrgID          string           `json:"org_id"`
	OfficeHours    float64          `json:"office_hours"`
	WfhHours       float64          `json:"wfh_hours"`
	LeaveNodes     int              `json:"leave_nodes"`
	TeamEfficiency []TeamEfficiency `json:"team_efficiency"`
	TopUsers       []UserStat       `json:"top_users"`
}

type OrgStat struct {
	OrgID  string `json:"org_id"`
	Name   string `json:"name"`
	Users  int    `json:"users"`
	Admins int    `json:"admins"`
	Teams  int    `json:"teams"`
	Tasks  int    `json:"tasks"`
}

type PlatformReport struct {
	TotalOrgs   int       `json:"total_orgs"`
	TotalAdmins int       `json:"total_admins"`
	TotalUsers  int       `json:"total_users"`
	OrgStats    []OrgStat `json:"org_stats"`
}

type SummaryResponse struct {
	OrgID   string `json:"org_id"`
	Summary string `json:"summary"`
}
