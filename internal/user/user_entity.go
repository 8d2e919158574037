package user

import (
	"strings"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/tenant"
)

type User struct {
	ID        string
	FirstName string
	LastName  string
	Name      string // derived: FirstName + " " + LastName, re-derived on every edit
	Email     string
	Password  string // bcrypt hash; plaintext is never stored
	Role      domain.Role
	OrgIDs    []string
	TeamID    string
	Status    domain.WorkStatus
	// MustChangePassword gates login until the one-time key is rotated.
	MustChangePassword bool
}

func (u User) EntityID() string { return u.ID }

// MemberOf reports whether the user belongs to (or administers) the org.
func (u User) MemberOf(orgID string) bool {
	return tenant.MemberOf(u.OrgIDs, orgID)
}

// DeriveName builds the display name from the name parts.
func DeriveName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// NormalizeEmail is the canonical form used for login matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
