package user

type CreateUserRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Role      string   `json:"role" binding:"required,oneof=MEMBER EXECUTIVE"`
	TeamID    string   `json:"team_id"`
	Password  string   `json:"password"` // optional; a one-time key is issued when omitted
	OrgIDs    []string `json:"org_ids"`  // defaults to the active organization
}

type CreateAdminRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	OrgIDs    []string `json:"org_ids"`
}

type UpdateUserRequest struct {
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Role      *string   `json:"role"`
	TeamID    *string   `json:"team_id"`
	OrgIDs    *[]string `json:"org_ids"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Office WFH Leave"`
}

type UserResponse struct {
	ID                 string   `json:"id"`
	FirstName          string   `json:"first_name,omitempty"`
	LastName           string   `json:"last_name,omitempty"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	OrgIDs             []string `json:"org_ids"`
	TeamID             string   `json:"team_id,omitempty"`
	Status             string   `json:"status"`
	MustChangePassword bool     `json:"must_change_password"`
}

// CreatedUserResponse carries the freshly issued one-time key. It is
// surfaced exactly once; the system keeps only the hash and has no
// memory of having displayed it.
type CreatedUserResponse struct {
	User       UserResponse `json:"user"`
	OneTimeKey string       `json:"one_time_key,omitempty"`
}

type ResetKeyResponse struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	OneTimeKey string `json:"one_time_key"`
}
