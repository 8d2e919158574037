package team

type CreateTeamRequest struct {
	Name   string `json:"name" binding:"required"`
	LeadID string `json:"lead_id"`
}

type UpdateTeamRequest struct {
	Name   *string `json:"name"`
	LeadID *string `json:"lead_id"`
}

type TeamResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OrgID    string `json:"org_id"`
	LeadID   string `json:"lead_id,omitempty"`
	LeadName string `json:"lead_name,omitempty"`
}
