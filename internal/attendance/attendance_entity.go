package attendance

import (
	"time"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
)

// Record is one attendance entry. Records are append-only: a new one is
// created whenever a user switches to Office or WFH. Switching to Leave
// creates no record.
type Record struct {
	ID          string
	UserID      string
	OrgID       string
	Date        string // 2006-01-02
	ClockIn     time.Time
	ClockOut    *time.Time
	Status      domain.WorkStatus
	HoursWorked float64
}

func (r Record) EntityID() string  { return r.ID }
func (r Record) TenantOrg() string { return r.OrgID }
