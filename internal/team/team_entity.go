package team

// Team belongs to exactly one organization. LeadID is a loose reference;
// a deleted lead leaves the team unassigned rather than failing lookups.
type Team struct {
	ID     string
	Name   string
	OrgID  string
	LeadID string
}

func (t Team) EntityID() string  { return t.ID }
func (t Team) TenantOrg() string { return t.OrgID }
