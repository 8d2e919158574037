package domain

// EnforceRequest is the question asked of the access resolver: may this
// role perform action on resource? Role is the wire string so the
// matcher compares it directly against the policy table.
type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}
