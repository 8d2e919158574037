package organization

// Organization is a tenant boundary grouping users, teams, tasks and
// attendance. AdminIDs is informational; authorization is driven by each
// user's OrgIDs set.
type Organization struct {
	ID       string
	Name     string
	Details  string
	AdminIDs []string
	Logs     []string
}

func (o Organization) EntityID() string { return o.ID }
