package store

import "github.com/google/uuid"

// NewID returns a prefixed unique id, e.g. "org-4f9f…". Prefixes keep
// ids readable in logs and API payloads.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
