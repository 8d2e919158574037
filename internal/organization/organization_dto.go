package organization

type CreateOrganizationRequest struct {
	Name     string   `json:"name" binding:"required"`
	Details  string   `json:"details"`
	AdminIDs []string `json:"admin_ids"`
	Logs     []string `json:"logs"`
}

type UpdateOrganizationRequest struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
}

type OrganizationResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Details  string   `json:"details"`
	AdminIDs []string `json:"admin_ids"`
	Logs     []string `json:"logs"`
}
