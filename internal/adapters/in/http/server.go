package http

import (
	"context"
	"log/slog"
	"net/http"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/asset"

	"github.com/labstack/echo/v4"
)

type CreateServiceCommandHandler interface {
	Handle(ctx context.Context, cmd commands.CreateServiceCommand) error
}

type UpdateServiceCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateServiceCommand) (cleanup.Report, error)
}

type DeleteServiceCommandHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteServiceCommand) (cleanup.Report, error)
}

type CreateApplicationCommandHandler interface {
	Handle(ctx context.Context, cmd commands.CreateApplicationCommand) error
}

type UpdateApplicationStatusCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateApplicationStatusCommand) error
}

type DeleteApplicationCommandHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteApplicationCommand) (cleanup.Report, error)
}

type CreateUserCommandHandler interface {
	Handle(ctx context.Context, cmd commands.CreateUserCommand) error
}

type UploadUserCVCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UploadUserCVCommand) (*asset.Asset, cleanup.Report, error)
}

type DeleteUserCommandHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteUserCommand) (cleanup.Report, error)
}

type UpdateUserCommandHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateUserCommand) error
}

type GetServiceQueryHandler interface {
	Handle(ctx context.Context, query queries.GetServiceQuery) (queries.GetServiceQueryResponse, error)
}

type ListServicesQueryHandler interface {
	Handle(ctx context.Context, query queries.ListServicesQuery) ([]queries.ListServicesQueryResponse, error)
}

type ListApplicationsQueryHandler interface {
	Handle(ctx context.Context, query queries.ListApplicationsQuery) ([]queries.ListApplicationsQueryResponse, error)
}

type GetDocumentDownloadQueryHandler interface {
	Handle(ctx context.Context, query queries.GetDocumentDownloadQuery) (string, error)
}

type ListUsersQueryHandler interface {
	Handle(ctx context.Context, query queries.ListUsersQuery) ([]queries.ListUsersQueryResponse, error)
}

// HealthReporter exposes the result of the last storage check.
type HealthReporter interface {
	LastError() error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateService           CreateServiceCommandHandler
	UpdateService           UpdateServiceCommandHandler
	DeleteService           DeleteServiceCommandHandler
	CreateApplication       CreateApplicationCommandHandler
	UpdateApplicationStatus UpdateApplicationStatusCommandHandler
	DeleteApplication       DeleteApplicationCommandHandler
	CreateUser              CreateUserCommandHandler
	UpdateUser              UpdateUserCommandHandler
	UploadUserCV            UploadUserCVCommandHandler
	DeleteUser              DeleteUserCommandHandler

	// Query handlers
	GetService          GetServiceQueryHandler
	ListServices        ListServicesQueryHandler
	ListApplications    ListApplicationsQueryHandler
	GetDocumentDownload GetDocumentDownloadQueryHandler
	ListUsers           ListUsersQueryHandler
}

// Server maps HTTP requests onto application use cases.
type Server struct {
	handlers Handlers
	health   HealthReporter
	metrics  http.Handler
	logger   *slog.Logger
}

// NewServer creates a Server. health and metrics may be nil.
func NewServer(handlers Handlers, health HealthReporter, metrics http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		health:   health,
		metrics:  metrics,
		logger:   logger.With("component", "http_server"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	if s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.metrics))
	}

	api := e.Group("/api")

	svc := api.Group("/service")
	svc.POST("", s.CreateService)
	svc.GET("", s.ListServices)
	svc.GET("/:id", s.GetService)
	svc.PUT("/:id", s.UpdateService)
	svc.DELETE("/:id", s.DeleteService)
	svc.GET("/:serviceId/download/:docId", s.DownloadDocument)

	app := api.Group("/application")
	app.POST("", s.CreateApplication)
	app.GET("", s.ListApplications)
	app.PATCH("/:id/status", s.UpdateApplicationStatus)
	app.DELETE("/:id", s.DeleteApplication)

	usr := api.Group("/user")
	usr.POST("", s.CreateUser)
	usr.GET("", s.ListUsers)
	usr.GET("/all", s.ListUsers)
	usr.PUT("/:id", s.UpdateUser)
	usr.PUT("/:id/cv", s.UploadUserCV)
	usr.DELETE("/:id", s.DeleteUser)
}

// Health handles GET /health. It reports 503 while the last storage check
// is failing.
func (s *Server) Health(ctx echo.Context) error {
	if s.health != nil {
		if err := s.health.LastError(); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Code:    http.StatusServiceUnavailable,
				Message: "Object storage is unreachable",
			})
		}
	}
	return ctx.String(http.StatusOK, "Healthy")
}
