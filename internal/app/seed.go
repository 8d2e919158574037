package app

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/credential"
	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/task"
	"github.com/mattForge/OzoneForgePlanner/internal/team"
	"github.com/mattForge/OzoneForgePlanner/internal/user"
)

// Seed loads the demo dataset so a fresh process is usable immediately.
// Every account authenticates with "password".
func Seed(ctx context.Context, reg *Registry) error {
	sharedHash, err := credential.Hash("password")
	if err != nil {
		return err
	}

	orgs := []organization.Organization{
		{
			ID:       "org-1",
			Name:     "ForgeAcademy",
			Details:  "Advanced Technology Training Center",
			AdminIDs: []string{"admin-1"},
			Logs: []string{
				"[SYS] Kernel Initialized",
				"[AUTH] Admin logged in",
				"[DATA] Sync complete",
				"[USER] Mike added to registry",
			},
		},
		{
			ID:       "org-2",
			Name:     "Ozone",
			Details:  "Atmospheric Solutions Corp",
			AdminIDs: []string{"admin-1", "admin-2"},
			Logs: []string{
				"[SYS] Pressure sensors active",
				"[CRON] Nightly backup finished",
			},
		},
	}
	for _, o := range orgs {
		if err := reg.OrgRepo.Create(ctx, o); err != nil {
			return err
		}
	}

	users := []user.User{
		{ID: "super-1", Name: "Matt C", Email: "matt.c@forgeacademy.co.za", Role: domain.RoleSuperUser, Status: domain.StatusOffice},
		{ID: "admin-1", Name: "Forge Admin", Email: "admin@example.com", Role: domain.RoleAdmin, OrgIDs: []string{"org-1", "org-2"}, Status: domain.StatusOffice},
		{ID: "admin-2", Name: "Ozone Admin", Email: "admin2@example.com", Role: domain.RoleAdmin, OrgIDs: []string{"org-2"}, Status: domain.StatusOffice},
		{ID: "user-3", Name: "Charlie Member", Email: "charlie@example.com", Role: domain.RoleMember, OrgIDs: []string{"org-1"}, TeamID: "team-1", Status: domain.StatusOffice},
		{ID: "user-4", Name: "Diana Member", Email: "diana@example.com", Role: domain.RoleMember, OrgIDs: []string{"org-2"}, TeamID: "team-2", Status: domain.StatusWFH},
		{ID: "user-5", Name: "Mike", Email: "mike@example.com", Role: domain.RoleMember, OrgIDs: []string{"org-1"}, TeamID: "team-1", Status: domain.StatusOffice},
	}
	for _, u := range users {
		u.Password = sharedHash
		if parts := strings.SplitN(u.Name, " ", 2); len(parts) == 2 {
			u.FirstName, u.LastName = parts[0], parts[1]
		} else {
			u.FirstName = u.Name
		}
		if err := reg.UserRepo.Create(ctx, u); err != nil {
			return err
		}
	}

	teams := []team.Team{
		{ID: "team-1", Name: "Forge Dev", OrgID: "org-1", LeadID: "user-3"},
		{ID: "team-2", Name: "Ozone Research", OrgID: "org-2", LeadID: "user-4"},
	}
	for _, t := range teams {
		if err := reg.TeamRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	tasks := []task.Task{
		{ID: "task-1", Title: "Init Vector", Description: "Database setup", AssigneeIDs: []string{"user-3", "user-5"}, TeamID: "team-1", OrgID: "org-1", DueDate: "2024-06-15", Status: domain.TaskInProgress, Priority: domain.PriorityHigh},
		{ID: "task-2", Title: "Atmosphere Check", Description: "Sensor verify", AssigneeIDs: []string{"user-4"}, TeamID: "team-2", OrgID: "org-2", DueDate: "2024-06-10", Status: domain.TaskTodo, Priority: domain.PriorityMedium},
		{ID: "task-3", Title: "Frontend Polish", Description: "Final UI fixes", AssigneeIDs: []string{"user-3"}, TeamID: "team-1", OrgID: "org-1", DueDate: "2024-06-20", Status: domain.TaskDone, Priority: domain.PriorityMedium},
	}
	for _, t := range tasks {
		if err := reg.TaskRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	records := []attendance.Record{
		{ID: "att-1", UserID: "user-3", OrgID: "org-1", Date: "2024-06-10", ClockIn: seedTime("2024-06-10T09:00:00Z"), Status: domain.StatusOffice, HoursWorked: 8},
		{ID: "att-2", UserID: "user-4", OrgID: "org-2", Date: "2024-06-10", ClockIn: seedTime("2024-06-10T09:30:00Z"), Status: domain.StatusWFH, HoursWorked: 7.5},
		{ID: "att-3", UserID: "user-5", OrgID: "org-1", Date: "2024-06-10", ClockIn: seedTime("2024-06-10T10:00:00Z"), Status: domain.StatusOffice, HoursWorked: 6},
		{ID: "att-4", UserID: "user-3", OrgID: "org-1", Date: "2024-06-11", ClockIn: seedTime("2024-06-11T09:00:00Z"), Status: domain.StatusLeave, HoursWorked: 0},
	}
	for _, rec := range records {
		if err := reg.AttendanceRepo.Create(ctx, rec); err != nil {
			return err
		}
	}

	zap.L().Info("seed data loaded",
		zap.Int("orgs", len(orgs)),
		zap.Int("users", len(users)),
		zap.Int("teams", len(teams)),
		zap.Int("tasks", len(tasks)),
		zap.Int("attendance", len(records)),
	)
	return nil
}

func seedTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339, v)
	return t
}
