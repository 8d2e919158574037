package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mattForge/OzoneForgePlanner/internal/summary"
	"github.com/mattForge/OzoneForgePlanner/internal/summary/mock"
)

func TestService_Summarize_ReturnsGeneratedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("Attendance looks balanced this week.", nil)

	svc := summary.NewService(client)

	got := svc.Summarize(context.Background(), "org-1", "report payload")
	assert.Equal(t, "Attendance looks balanced this week.", got)
}

func TestService_Summarize_FallbackOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", errors.New("quota exceeded"))

	svc := summary.NewService(client)

	got := svc.Summarize(context.Background(), "org-1", "report payload")
	assert.Equal(t, summary.Fallback, got)
}

func TestService_Summarize_FallbackOnEmptyResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", nil)

	svc := summary.NewService(client)

	got := svc.Summarize(context.Background(), "org-1", "report payload")
	assert.Equal(t, summary.Fallback, got)
}
