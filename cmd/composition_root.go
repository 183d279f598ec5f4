package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	httpin "recruitment/internal/adapters/in/http"
	"recruitment/internal/adapters/out/blobstore/memory"
	"recruitment/internal/adapters/out/blobstore/s3"
	"recruitment/internal/adapters/out/metrics"
	"recruitment/internal/adapters/out/postgres"
	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"
	"recruitment/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	codec        services.URLCodec
	blobStore    ports.BlobStore
	limits       asset.UploadLimits
	registry     *prometheus.Registry
	uploader     *uploads.Uploader
	orchestrator *cleanup.Orchestrator
	healthJob    *jobs.StorageHealthJob
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	codec, err := services.NewURLCodec(cfg.StorageHost, cfg.StorageCloudName)
	if err != nil {
		return nil, fmt.Errorf("url codec: %w", err)
	}
	limits, err := cfg.UploadLimits()
	if err != nil {
		return nil, err
	}
	cleanupOpts, err := cfg.CleanupOptions()
	if err != nil {
		return nil, err
	}
	legacyKind, err := cfg.LegacyKind()
	if err != nil {
		return nil, err
	}
	resolver, err := services.NewResourceKindResolver(legacyKind)
	if err != nil {
		return nil, err
	}

	blobStore, err := newBlobStore(cfg, codec, logger)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer, err := metrics.NewPrometheusObserver("", registry)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	uploader, err := uploads.NewUploader(blobStore, services.NewUploadValidator(), limits, observer, logger)
	if err != nil {
		return nil, err
	}
	orchestrator, err := cleanup.NewOrchestrator(blobStore, resolver, observer, cleanupOpts, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:       logger,
		codec:        codec,
		blobStore:    blobStore,
		limits:       limits,
		registry:     registry,
		uploader:     uploader,
		orchestrator: orchestrator,
		healthJob:    jobs.NewStorageHealthJob(blobStore, cfg.HealthCheckSchedule, logger),
	}, nil
}

func newBlobStore(cfg Config, codec services.URLCodec, logger *slog.Logger) (ports.BlobStore, error) {
	backend, err := cfg.BlobStoreBackend()
	if err != nil {
		return nil, err
	}
	if backend == BlobStoreMemory {
		logger.Warn("using in-memory blob store, uploads are lost on restart")
		return memory.New(codec), nil
	}
	store, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Insecure:  cfg.Insecure(),
	}, codec, logger)
	if err != nil {
		return nil, fmt.Errorf("s3 blob store: %w", err)
	}
	return store, nil
}

func (c *CompositionRoot) UploadLimits() asset.UploadLimits {
	return c.limits
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.healthJob)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *CompositionRoot) HTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateService:           c.CreateCreateServiceCommandHandler(),
		UpdateService:           c.CreateUpdateServiceCommandHandler(),
		DeleteService:           c.CreateDeleteServiceCommandHandler(),
		CreateApplication:       c.CreateCreateApplicationCommandHandler(),
		UpdateApplicationStatus: c.CreateUpdateApplicationStatusCommandHandler(),
		DeleteApplication:       c.CreateDeleteApplicationCommandHandler(),
		CreateUser:              c.CreateCreateUserCommandHandler(),
		UpdateUser:              c.CreateUpdateUserCommandHandler(),
		UploadUserCV:            c.CreateUploadUserCVCommandHandler(),
		DeleteUser:              c.CreateDeleteUserCommandHandler(),

		GetService:          c.CreateGetServiceQueryHandler(),
		ListServices:        c.CreateListServicesQueryHandler(),
		ListApplications:    c.CreateListApplicationsQueryHandler(),
		GetDocumentDownload: c.CreateGetDocumentDownloadQueryHandler(),
		ListUsers:           c.CreateListUsersQueryHandler(),
	}
	return httpin.NewServer(handlers, c.healthJob, c.MetricsHandler(), c.logger)
}

func (c *CompositionRoot) serviceUoWFactory() commands.ServiceUoWFactory {
	return FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) applicationUoWFactory() commands.ApplicationUoWFactory {
	return FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	return commands.NewCreateServiceCommandHandler(c.serviceUoWFactory(), c.uploader, c.orchestrator)
}

func (c *CompositionRoot) CreateUpdateServiceCommandHandler() commands.UpdateServiceCommandHandler {
	return commands.NewUpdateServiceCommandHandler(c.serviceUoWFactory(), c.uploader, c.orchestrator)
}

func (c *CompositionRoot) CreateDeleteServiceCommandHandler() commands.DeleteServiceCommandHandler {
	return commands.NewDeleteServiceCommandHandler(c.serviceUoWFactory(), c.orchestrator)
}

func (c *CompositionRoot) CreateCreateApplicationCommandHandler() commands.CreateApplicationCommandHandler {
	return commands.NewCreateApplicationCommandHandler(c.applicationUoWFactory(), c.uploader, c.orchestrator)
}

func (c *CompositionRoot) CreateUpdateApplicationStatusCommandHandler() commands.UpdateApplicationStatusCommandHandler {
	return commands.NewUpdateApplicationStatusCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteApplicationCommandHandler() commands.DeleteApplicationCommandHandler {
	return commands.NewDeleteApplicationCommandHandler(c.applicationUoWFactory(), c.orchestrator)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUploadUserCVCommandHandler() commands.UploadUserCVCommandHandler {
	return commands.NewUploadUserCVCommandHandler(c.userUoWFactory(), c.uploader, c.orchestrator)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.orchestrator)
}

func (c *CompositionRoot) CreateGetServiceQueryHandler() queries.GetServiceQueryHandler {
	return queries.NewGetServiceQueryHandler(c.gormDB, c.codec, c.logger)
}

func (c *CompositionRoot) CreateListServicesQueryHandler() queries.ListServicesQueryHandler {
	return queries.NewListServicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListApplicationsQueryHandler() queries.ListApplicationsQueryHandler {
	return queries.NewListApplicationsQueryHandler(c.gormDB, c.codec, c.logger)
}

func (c *CompositionRoot) CreateGetDocumentDownloadQueryHandler() queries.GetDocumentDownloadQueryHandler {
	return queries.NewGetDocumentDownloadQueryHandler(c.gormDB, c.codec, c.logger)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB, c.codec, c.logger)
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
