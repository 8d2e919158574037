package summary

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fallback is returned whenever the narrative cannot be produced. The
// wording is part of the client contract, dashboards match on it.
const Fallback = "Unable to generate AI summary at this time. Please check your data manually."

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	// Summarize never fails; generation errors degrade to Fallback.
	Summarize(ctx context.Context, key, prompt string) string
}

type service struct {
	client Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(client Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{client: client, logger: l}
}

func (s *service) Summarize(ctx context.Context, key, prompt string) string {
	// Concurrent dashboards asking for the same org share one upstream
	// call instead of fanning out.
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.client.GenerateContent(ctx, prompt)
	})
	if err != nil {
		s.logger.Warn("summary generation failed", zap.String("key", key), zap.Error(err))
		return Fallback
	}

	text, ok := v.(string)
	if !ok || text == "" {
		return Fallback
	}
	return text
}
