package metrics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/task"
	"github.com/mattForge/OzoneForgePlanner/internal/team"
	"github.com/mattForge/OzoneForgePlanner/internal/user"
)

type fakeSummaries struct {
	text  string
	calls int
}

func (f *fakeSummaries) Summarize(ctx context.Context, key, prompt string) string {
	f.calls++
	return f.text
}

type metricsFixture struct {
	svc       Service
	att       attendance.Repository
	tasks     task.Repository
	teams     team.Repository
	users     user.Repository
	orgs      organization.Repository
	summaries *fakeSummaries
}

func newMetricsFixture() *metricsFixture {
	f := &metricsFixture{
		att:       attendance.NewRepository(),
		tasks:     task.NewRepository(),
		teams:     team.NewRepository(),
		users:     user.NewRepository(),
		orgs:      organization.NewRepository(),
		summaries: &fakeSummaries{text: "all healthy"},
	}
	f.svc = NewService(f.att, f.tasks, f.teams, f.users, f.orgs, f.summaries)
	return f
}

func (f *metricsFixture) addRecord(t *testing.T, id, userID, orgID string, status domain.WorkStatus, hours float64) {
	t.Helper()
	err := f.att.Create(context.Background(), attendance.Record{
		ID: id, UserID: userID, OrgID: orgID,
		Date: "2024-06-10", ClockIn: time.Now().UTC(),
		Status: status, HoursWorked: hours,
	})
	assert.NoError(t, err)
}

func TestService_ExecutiveReport_HourBuckets(t *testing.T) {
	f := newMetricsFixture()
	ctx := context.Background()

	f.addRecord(t, "att-1", "user-1", "org-ozone", domain.StatusOffice, 8)
	f.addRecord(t, "att-2", "user-2", "org-ozone", domain.StatusWFH, 7.5)
	f.addRecord(t, "att-3", "user-9", "org-other", domain.StatusOffice, 6)

	report, err := f.svc.ExecutiveReport(ctx, "org-ozone")
	assert.NoError(t, err)

	assert.Equal(t, float64(8), report.OfficeHours)
	assert.Equal(t, 7.5, report.WfhHours)
	assert.Equal(t, 0, report.LeaveNodes)
}

func TestService_ExecutiveReport_CountsLeaveNodes(t *testing.T) {
	f := newMetricsFixture()

	f.addRecord(t, "att-1", "user-1", "org-1", domain.StatusLeave, 0)
	f.addRecord(t, "att-2", "user-1", "org-1", domain.StatusLeave, 0)

	report, err := f.svc.ExecutiveReport(context.Background(), "org-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, report.LeaveNodes)
	assert.Zero(t, report.OfficeHours)
}

func TestService_TeamEfficiency_ZeroTasksIsZero(t *testing.T) {
	f := newMetricsFixture()
	ctx := context.Background()

	assert.NoError(t, f.teams.Create(ctx, team.Team{ID: "team-1", Name: "Forge Dev", OrgID: "org-1"}))
	assert.NoError(t, f.teams.Create(ctx, team.Team{ID: "team-2", Name: "Idle Crew", OrgID: "org-1"}))

	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-1", Title: "A", OrgID: "org-1", TeamID: "team-1", Status: domain.TaskDone}))
	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-2", Title: "B", OrgID: "org-1", TeamID: "team-1", Status: domain.TaskTodo}))
	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-3", Title: "C", OrgID: "org-1", TeamID: "team-1", Status: domain.TaskInProgress}))

	report, err := f.svc.ExecutiveReport(ctx, "org-1")
	assert.NoError(t, err)
	assert.Len(t, report.TeamEfficiency, 2)

	assert.Equal(t, "team-1", report.TeamEfficiency[0].TeamID)
	assert.Equal(t, 33, report.TeamEfficiency[0].Efficiency)

	// No tasks means 0, never a division error.
	assert.Equal(t, "team-2", report.TeamEfficiency[1].TeamID)
	assert.Equal(t, 0, report.TeamEfficiency[1].Efficiency)
	assert.Equal(t, 0, report.TeamEfficiency[1].Total)
}

func TestService_TopUsers_CappedAtFiveAndStable(t *testing.T) {
	f := newMetricsFixture()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		id := fmt.Sprintf("user-%d", i)
		assert.NoError(t, f.users.Create(ctx, user.User{
			ID: id, Name: fmt.Sprintf("User %d", i),
			Role: domain.RoleMember, OrgIDs: []string{"org-1"},
		}))
	}

	// user-3 completes two tasks, user-5 one; everyone else none.
	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-1", OrgID: "org-1", AssigneeIDs: []string{"user-3"}, Status: domain.TaskDone}))
	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-2", OrgID: "org-1", AssigneeIDs: []string{"user-3", "user-5"}, Status: domain.TaskDone}))
	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-3", OrgID: "org-1", AssigneeIDs: []string{"user-1"}, Status: domain.TaskTodo}))

	report, err := f.svc.ExecutiveReport(ctx, "org-1")
	assert.NoError(t, err)

	assert.Len(t, report.TopUsers, 5)
	assert.Equal(t, "user-3", report.TopUsers[0].UserID)
	assert.Equal(t, 2, report.TopUsers[0].CompletedTasks)
	assert.Equal(t, "user-5", report.TopUsers[1].UserID)

	// Ties keep insertion order.
	assert.Equal(t, "user-1", report.TopUsers[2].UserID)
	assert.Equal(t, "user-2", report.TopUsers[3].UserID)
}

func TestService_PlatformReport(t *testing.T) {
	f := newMetricsFixture()
	ctx := context.Background()

	assert.NoError(t, f.orgs.Create(ctx, organization.Organization{ID: "org-1", Name: "ForgeAcademy"}))
	assert.NoError(t, f.orgs.Create(ctx, organization.Organization{ID: "org-2", Name: "Ozone"}))

	assert.NoError(t, f.users.Create(ctx, user.User{ID: "super-1", Role: domain.RoleSuperUser}))
	assert.NoError(t, f.users.Create(ctx, user.User{ID: "admin-1", Role: domain.RoleAdmin, OrgIDs: []string{"org-1", "org-2"}}))
	assert.NoError(t, f.users.Create(ctx, user.User{ID: "user-3", Role: domain.RoleMember, OrgIDs: []string{"org-1"}}))

	assert.NoError(t, f.tasks.Create(ctx, task.Task{ID: "task-1", OrgID: "org-1"}))

	report, err := f.svc.PlatformReport(ctx)
	assert.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrgs)
	assert.Equal(t, 1, report.TotalAdmins)
	assert.Equal(t, 3, report.TotalUsers)

	assert.Equal(t, "org-1", report.OrgStats[0].OrgID)
	assert.Equal(t, 2, report.OrgStats[0].Users)
	assert.Equal(t, 1, report.OrgStats[0].Admins)
	assert.Equal(t, 1, report.OrgStats[0].Tasks)

	// The multi-org admin is counted in both organizations.
	assert.Equal(t, 1, report.OrgStats[1].Users)
	assert.Equal(t, 1, report.OrgStats[1].Admins)
}

func TestService_ExecutiveSummary_DelegatesToCollaborator(t *testing.T) {
	f := newMetricsFixture()

	res, err := f.svc.ExecutiveSummary(context.Background(), "org-1")
	assert.NoError(t, err)
	assert.Equal(t, "all healthy", res.Summary)
	assert.Equal(t, "org-1", res.OrgID)
	assert.Equal(t, 1, f.summaries.calls)
}
