package access

import (
	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/domain"
)

//go:generate mockgen -source=access_service.go -destination=mock/access_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Capabilities(role string, orgCount int) CapabilitiesResponse
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("access.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Capabilities derives the navigation surface a client may render for
// a role. Admins spanning several organizations additionally get the
// organization switcher.
func (s *service) Capabilities(role string, orgCount int) CapabilitiesResponse {
	var nav []string

	switch domain.Role(role) {
	case domain.RoleSuperUser:
		nav = []string{"super", "entities", "admin_node"}
	case domain.RoleAdmin:
		nav = []string{"dashboard", "tasks", "attendance", "users", "teams"}
		if orgCount > 1 {
			nav = append(nav, "select-org")
		}
	case domain.RoleExecutive:
		nav = []string{"dashboard", "attendance"}
	case domain.RoleMember:
		nav = []string{"dashboard", "tasks"}
	default:
		nav = []string{}
	}

	return CapabilitiesResponse{Role: role, Navigation: nav}
}
