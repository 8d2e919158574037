package attendance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
	"github.com/mattForge/OzoneForgePlanner/internal/shared/contextutil"
	"github.com/mattForge/OzoneForgePlanner/internal/store"
)

// defaultShiftHours is credited when a user clocks in by switching
// status. Hours are a flat figure, not derived from clock-out times.
const defaultShiftHours = 8

// RosterUser is the slice of user data the pulse overview needs. The
// user package adapts its repository to this interface, keeping the
// dependency pointing that way.
type RosterUser struct {
	ID     string
	Name   string
	Status domain.WorkStatus
}

type UserDirectory interface {
	OrgRoster(ctx context.Context, orgID string) ([]RosterUser, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// Track appends a record for an Office/WFH transition. Leave
	// transitions must not be passed here.
	Track(ctx context.Context, userID, orgID string, status domain.WorkStatus) (RecordResponse, error)
	GetAllByOrg(ctx context.Context, orgID string) ([]RecordResponse, error)
	// Pulse returns each org member's current status and lifetime hours.
	Pulse(ctx context.Context, orgID string) ([]PulseEntry, error)
}

type service struct {
	repo   Repository
	users  UserDirectory
	logger *zap.Logger
}

func NewService(repo Repository, users UserDirectory, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, users: users, logger: l}
}

func (s *service) Track(ctx context.Context, userID, orgID string, status domain.WorkStatus) (RecordResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	now := time.Now().UTC()
	rec := Record{
		ID:          store.NewID("att"),
		UserID:      userID,
		OrgID:       orgID,
		Date:        now.Format("2006-01-02"),
		ClockIn:     now,
		Status:      status,
		HoursWorked: defaultShiftHours,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		l.Error("failed to append attendance record", zap.Error(err))
		return RecordResponse{}, err
	}

	l.Info("attendance recorded",
		zap.String("user_id", userID),
		zap.String("org_id", orgID),
		zap.String("status", string(status)),
	)
	return mapToResponse(rec), nil
}

func (s *service) GetAllByOrg(ctx context.Context, orgID string) ([]RecordResponse, error) {
	rows, err := s.repo.FindAllByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	res := make([]RecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Pulse(ctx context.Context, orgID string) ([]PulseEntry, error) {
	roster, err := s.users.OrgRoster(ctx, orgID)
	if err != nil {
		return nil, err
	}

	entries := make([]PulseEntry, 0, len(roster))
	for _, u := range roster {
		recs, err := s.repo.FindAllByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		var total float64
		for _, r := range recs {
			total += r.HoursWorked
		}

		entries = append(entries, PulseEntry{
			UserID:     u.ID,
			Name:       u.Name,
			Status:     string(u.Status),
			TotalHours: total,
		})
	}
	return entries, nil
}

func mapToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		OrgID:       r.OrgID,
		Date:        r.Date,
		ClockIn:     r.ClockIn.Format(time.RFC3339),
		Status:      string(r.Status),
		HoursWorked: r.HoursWorked,
	}
	if r.ClockOut != nil {
		v := r.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
