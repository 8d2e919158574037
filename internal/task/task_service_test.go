package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	taskerrors "github.com/mattForge/OzoneForgePlanner/internal/task/errors"
)

func newTaskService() Service {
	orgSvc := organization.NewService(organization.NewRepository())
	return NewService(NewRepository(), orgSvc)
}

func TestService_Create_AppliesDefaults(t *testing.T) {
	svc := newTaskService()

	created, err := svc.Create(context.Background(), "org-1", CreateTaskRequest{
		Title:       "Init Vector",
		TeamID:      "team-1",
		AssigneeIDs: []string{"user-3", "user-5"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Todo", created.Status)
	assert.Equal(t, "Medium", created.Priority)
	assert.Equal(t, []string{"user-3", "user-5"}, created.AssigneeIDs)
}

func TestService_Create_RejectsUnknownStatus(t *testing.T) {
	svc := newTaskService()

	_, err := svc.Create(context.Background(), "org-1", CreateTaskRequest{
		Title:  "Bad Task",
		Status: "Archived",
	})
	assert.ErrorIs(t, err, taskerrors.ErrInvalidStatus)
}

func TestService_Update_StatusHasNoTransitionOrder(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-1", CreateTaskRequest{Title: "Init Vector"})
	assert.NoError(t, err)

	// Any valid status may be set directly, including skipping states
	// or moving backwards.
	for _, status := range []string{"Done", "Todo", "In Progress"} {
		s := status
		updated, err := svc.Update(ctx, "org-1", created.ID, UpdateTaskRequest{Status: &s})
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestService_GetAllByOrg_ScopedToActiveOrg(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "org-1", CreateTaskRequest{Title: "Forge Task"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "org-2", CreateTaskRequest{Title: "Ozone Task"})
	assert.NoError(t, err)

	scoped, err := svc.GetAllByOrg(ctx, "org-2")
	assert.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, "Ozone Task", scoped[0].Title)
}

func TestService_Update_MissingSignalsNotFound(t *testing.T) {
	svc := newTaskService()
	title := "Renamed"

	_, err := svc.Update(context.Background(), "org-1", "task-missing", UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
}

func TestService_ByIdOperations_ScopedToActiveOrg(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-2", CreateTaskRequest{Title: "Ozone Task"})
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, "org-1", created.ID)
	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)

	title := "Hijacked"
	_, err = svc.Update(ctx, "org-1", created.ID, UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)

	err = svc.Delete(ctx, "org-1", created.ID)
	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)

	got, err := svc.GetByID(ctx, "org-2", created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ozone Task", got.Title)
}

func TestService_Delete_Idempotent(t *testing.T) {
	svc := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "org-1", CreateTaskRequest{Title: "Init Vector"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, "org-1", created.ID))
	assert.NoError(t, svc.Delete(ctx, "org-1", created.ID))
}
