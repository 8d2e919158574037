package access

type CapabilitiesResponse struct {
	Role       string   `json:"role"`
	Navigation []string `json:"navigation"`
	OrgIDs     []string `json:"org_ids,omitempty"`
}
