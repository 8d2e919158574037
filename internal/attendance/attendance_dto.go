package attendance

type RecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	OrgID       string  `json:"org_id"`
	Date        string  `json:"date"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    *string `json:"clock_out,omitempty"`
	Status      string  `json:"status"`
	HoursWorked float64 `json:"hours_worked"`
}

// PulseEntry is one row of the per-user attendance overview: current
// status plus total hours across all of the user's records.
type PulseEntry struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	TotalHours float64 `json:"total_hours"`
}
