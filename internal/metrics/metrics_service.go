package metrics

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/summary"
	"github.com/mattForge/OzoneForgePlanner/internal/task"
	"github.com/mattForge/OzoneForgePlanner/internal/team"
	"github.com/mattForge/OzoneForgePlanner/internal/user"
)

const topUserCount = 5

const summaryPrompt = "You are a workforce analyst. Summarize the following " +
	"organization report for an executive in roughly 150 words. Highlight " +
	"attendance balance, team efficiency and standout contributors. Report:\n"

//go:generate mockgen -source=metrics_service.go -destination=mock/metrics_service_mock.go -package=mock
type Service interface {
	// ExecutiveReport derives the per-organization figures. Nothing is
	// cached; every call recomputes from the live collections.
	ExecutiveReport(ctx context.Context, orgID string) (ExecutiveReport, error)
	PlatformReport(ctx context.Context) (PlatformReport, error)
	ExecutiveSummary(ctx context.Context, orgID string) (SummaryResponse, error)
}

type service struct {
	attendance attendance.Repository
	tasks      task.Repository
	teams      team.Repository
	users      user.Repository
	orgs       organization.Repository
	summaries  summary.Service
	logger     *zap.Logger
}

func NewService(
	att attendance.Repository,
	tasks task.Repository,
	teams team.Repository,
	users user.Repository,
	orgs organization.Repository,
	summaries summary.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("metrics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("metrics.service")
	}
	return &service{
		attendance: att,
		tasks:      tasks,
		teams:      teams,
		users:      users,
		orgs:       orgs,
		summaries:  summaries,
		logger:     l,
	}
}

func (s *service) ExecutiveReport(ctx context.Context, orgID string) (ExecutiveReport, error) {
	report := ExecutiveReport{OrgID: orgID}

	records, err := s.attendance.FindAllByOrg(ctx, orgID)
	if err != nil {
		return ExecutiveReport{}, err
	}

	for _, r := range records {
		switch r.Status {
		case domain.StatusOffice:
			report.OfficeHours += r.HoursWorked
		case domain.StatusWFH:
			report.WfhHours += r.HoursWorked
		case domain.StatusLeave:
			report.LeaveNodes++
		}
	}

	members, err := s.users.FindAllByOrg(ctx, orgID)
	if err != nil {
		return ExecutiveReport{}, err
	}

	tasks, err := s.tasks.FindAllByOrg(ctx, orgID)
	if err != nil {
		return ExecutiveReport{}, err
	}

	report.TopUsers = topUsers(members, tasks)

	report.TeamEfficiency, err = s.teamEfficiency(ctx, orgID, tasks)
	if err != nil {
		return ExecutiveReport{}, err
	}

	return report, nil
}

// topUsers ranks members by completed-task count. Ties keep the
// members' insertion order; the leading five are returned.
func topUsers(members []user.User, tasks []task.Task) []UserStat {
	doneByUser := make(map[string]int)
	for _, t := range tasks {
		if t.Status != domain.TaskDone {
			continue
		}
		for _, id := range t.AssigneeIDs {
			doneByUser[id]++
		}
	}

	stats := make([]UserStat, 0, len(members))
	for _, m := range members {
		stats = append(stats, UserStat{
			UserID:         m.ID,
			Name:           m.Name,
			CompletedTasks: doneByUser[m.ID],
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].CompletedTasks > stats[j].CompletedTasks
	})

	if len(stats) > topUserCount {
		stats = stats[:topUserCount]
	}
	return stats
}

func (s *service) teamEfficiency(ctx context.Context, orgID string, tasks []task.Task) ([]TeamEfficiency, error) {
	teams, err := s.teams.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	type tally struct{ done, total int }
	byTeam := make(map[string]*tally)
	for _, t := range tasks {
		if t.TeamID == "" {
			continue
		}
		c, ok := byTeam[t.TeamID]
		if !ok {
			c = &tally{}
			byTeam[t.TeamID] = c
		}
		c.total++
		if t.Status == domain.TaskDone {
			c.done++
		}
	}

	res := make([]TeamEfficiency, len(teams))
	for i, t := range teams {
		e := TeamEfficiency{TeamID: t.ID, Name: t.Name}
		if c, ok := byTeam[t.ID]; ok {
			e.Done = c.done
			e.Total = c.total
			if c.total > 0 {
				e.Efficiency = int(math.Round(100 * float64(c.done) / float64(c.total)))
			}
		}
		res[i] = e
	}
	return res, nil
}

func (s *service) PlatformReport(ctx context.Context) (PlatformReport, error) {
	orgs, err := s.orgs.FindAll(ctx)
	if err != nil {
		return PlatformReport{}, err
	}

	admins, err := s.users.FindAllByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return PlatformReport{}, err
	}

	everyone, err := s.users.FindAll(ctx)
	if err != nil {
		return PlatformReport{}, err
	}

	report := PlatformReport{
		TotalOrgs:   len(orgs),
		TotalAdmins: len(admins),
		TotalUsers:  len(everyone),
		OrgStats:    make([]OrgStat, len(orgs)),
	}

	for i, o := range orgs {
		members, err := s.users.FindAllByOrg(ctx, o.ID)
		if err != nil {
			return PlatformReport{}, err
		}
		teams, err := s.teams.FindAllByOrg(ctx, o.ID)
		if err != nil {
			return PlatformReport{}, err
		}
		tasks, err := s.tasks.FindAllByOrg(ctx, o.ID)
		if err != nil {
			return PlatformReport{}, err
		}

		adminCount := 0
		for _, m := range members {
			if m.Role == domain.RoleAdmin {
				adminCount++
			}
		}

		report.OrgStats[i] = OrgStat{
			OrgID:  o.ID,
			Name:   o.Name,
			Users:  len(members),
			Admins: adminCount,
			Teams:  len(teams),
			Tasks:  len(tasks),
		}
	}

	return report, nil
}

func (s *service) ExecutiveSummary(ctx context.Context, orgID string) (SummaryResponse, error) {
	report, err := s.ExecutiveReport(ctx, orgID)
	if err != nil {
		return SummaryResponse{}, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return SummaryResponse{}, err
	}

	text := s.summaries.Summarize(ctx, orgID, summaryPrompt+string(payload))
	return SummaryResponse{OrgID: orgID, Summary: text}, nil
}
