package tenant

// Scoped is implemented by entities owned by exactly one organization.
type Scoped interface {
	TenantOrg() string
}

// Scope returns a filter matching entities that belong to the active
// organization. Users are not Scoped; their membership test is MemberOf
// because admins can belong to several organizations.
func Scope[T Scoped](orgID string) func(T) bool {
	return func(e T) bool {
		return e.TenantOrg() == orgID
	}
}

// MemberOf reports whether orgID is in the given membership set.
func MemberOf(orgIDs []string, orgID string) bool {
	for _, id := range orgIDs {
		if id == orgID {
			return true
		}
	}
	return false
}
