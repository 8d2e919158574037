package task

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	TeamID      string   `json:"team_id"`
	ProjectID   string   `json:"project_id"`
	AssigneeIDs []string `json:"assignee_ids"`
	Status      string   `json:"status" binding:"omitempty,oneof=Todo 'In Progress' Done"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate     string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TeamID      *string   `json:"team_id"`
	ProjectID   *string   `json:"project_id"`
	AssigneeIDs *[]string `json:"assignee_ids"`
	Status      *string   `json:"status" binding:"omitempty,oneof=Todo 'In Progress' Done"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate     *string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	OrgID       string   `json:"org_id"`
	TeamID      string   `json:"team_id,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
	AssigneeIDs []string `json:"assignee_ids"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
}
