package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mattForge/OzoneForgePlanner/internal/access"
	"github.com/mattForge/OzoneForgePlanner/internal/attendance"
	"github.com/mattForge/OzoneForgePlanner/internal/auth"
	"github.com/mattForge/OzoneForgePlanner/internal/metrics"
	"github.com/mattForge/OzoneForgePlanner/internal/organization"
	"github.com/mattForge/OzoneForgePlanner/internal/summary"
	"github.com/mattForge/OzoneForgePlanner/internal/task"
	"github.com/mattForge/OzoneForgePlanner/internal/team"
	"github.com/mattForge/OzoneForgePlanner/internal/user"
)

// Registry holds the wired repositories and services so the seeder and
// tests can reach them after construction.
type Registry struct {
	OrgRepo        organization.Repository
	UserRepo       user.Repository
	TeamRepo       team.Repository
	TaskRepo       task.Repository
	AttendanceRepo attendance.Repository

	OrgService        organization.Service
	UserService       user.Service
	TeamService       team.Service
	TaskService       task.Service
	AttendanceService attendance.Service
	AuthService       auth.Service
	AccessService     access.Service
	MetricsService    metrics.Service
}

func registerModules(router *gin.Engine, logger *zap.Logger) (*Registry, error) {
	// --- Repositories ---
	orgRepo := organization.NewRepository()
	userRepo := user.NewRepository()
	teamRepo := team.NewRepository()
	taskRepo := task.NewRepository()
	attendanceRepo := attendance.NewRepository()

	// --- Access Control Core ---
	enforcer, err := access.NewEnforcer()
	if err != nil {
		return nil, err
	}
	accessService := access.NewService(enforcer, logger)

	// --- Services ---
	orgService := organization.NewService(orgRepo, logger)
	attendanceService := attendance.NewService(attendanceRepo, user.NewDirectory(userRepo), logger)
	userService := user.NewService(userRepo, attendanceService, orgService, logger)
	teamService := team.NewService(teamRepo, user.NewNameResolver(userRepo), orgService, logger)
	taskService := task.NewService(taskRepo, orgService, logger)
	authService := auth.NewService(userRepo, logger)
	summaryService := summary.NewService(summary.NewGeminiClient(), logger)
	metricsService := metrics.NewService(attendanceRepo, taskRepo, teamRepo, userRepo, orgRepo, summaryService, logger)

	// --- Handlers ---
	orgHandler := organization.NewHandler(orgService, logger)
	userHandler := user.NewHandler(userService, logger)
	teamHandler := team.NewHandler(teamService, logger)
	taskHandler := task.NewHandler(taskService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	authHandler := auth.NewHandler(authService, logger)
	accessHandler := access.NewHandler(accessService, logger)
	metricsHandler := metrics.NewHandler(metricsService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		access.RegisterRoutes(api, accessHandler)
		organization.RegisterRoutes(api, orgHandler, accessService)
		user.RegisterRoutes(api, userHandler, accessService, logger)
		team.RegisterRoutes(api, teamHandler, accessService)
		task.RegisterRoutes(api, taskHandler, accessService)
		attendance.RegisterRoutes(api, attendanceHandler, accessService)
		metrics.RegisterRoutes(api, metricsHandler, accessService)
	}

	return &Registry{
		OrgRepo:        orgRepo,
		UserRepo:       userRepo,
		TeamRepo:       teamRepo,
		TaskRepo:       taskRepo,
		AttendanceRepo: attendanceRepo,

		OrgService:        orgService,
		UserService:       userService,
		TeamService:       teamService,
		TaskService:       taskService,
		AttendanceService: attendanceService,
		AuthService:       authService,
		AccessService:     accessService,
		MetricsService:    metricsService,
	}, nil
}
