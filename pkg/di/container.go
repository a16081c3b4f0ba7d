package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"seo-backoffice/application/serviceimpl"
	"seo-backoffice/domain/ports"
	"seo-backoffice/domain/repositories"
	"seo-backoffice/domain/services"
	"seo-backoffice/infrastructure/messaging"
	natspkg "seo-backoffice/infrastructure/nats"
	"seo-backoffice/infrastructure/postgres"
	"seo-backoffice/infrastructure/storage"
	"seo-backoffice/interfaces/api/handlers"
	"seo-backoffice/pkg/config"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/scheduler"
)

const snapshotJobID = "seo-snapshot"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB              *gorm.DB
	NATSClient      *natspkg.Client // nil เมื่อไม่ได้ตั้ง NATS_URL
	ChangePublisher ports.ChangePublisherPort
	Storage         ports.StoragePort
	JobScheduler    scheduler.JobScheduler

	// Repositories
	AdminRepository repositories.AdminRepository
	TableRepository repositories.TableRepository

	// Services
	AuthService     services.AuthService
	GatewayService  services.TableGatewayService
	SEOService      services.SEOService
	SnapshotService services.SnapshotService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		DSN:          c.Config.Database.DSN(),
		LogLevel:     logger.GORMLevel(c.Config.Log.Level),
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	})
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if c.Config.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database migrated")
	}

	c.initChangePublisher()

	return c.initStorage()
}

// initChangePublisher ถ้าต่อ NATS ไม่ได้ก็ทำงานต่อโดยไม่ publish
func (c *Container) initChangePublisher() {
	if c.Config.NATS.URL == "" {
		c.ChangePublisher = messaging.NewNoopChangePublisher()
		logger.Info("Change events disabled (NATS_URL not set)")
		return
	}

	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
		URL:  c.Config.NATS.URL,
		Name: c.Config.App.Name,
	})
	if err != nil {
		logger.Warn("NATS client initialization failed (change events disabled)", "error", err)
		c.ChangePublisher = messaging.NewNoopChangePublisher()
		return
	}

	c.NATSClient = natsClient
	c.ChangePublisher = messaging.NewNATSChangePublisher(natsClient.Conn(), c.Config.NATS.SubjectPrefix, nil)
	logger.Info("Change publisher initialized", "prefix", c.Config.NATS.SubjectPrefix)
}

func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.AdminRepository = postgres.NewAdminRepository(c.DB)
	c.TableRepository = postgres.NewTableRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(c.AdminRepository)
	c.GatewayService = serviceimpl.NewTableGatewayService(c.TableRepository, c.ChangePublisher)
	c.SEOService = serviceimpl.NewSEOService(c.GatewayService)
	c.SnapshotService = serviceimpl.NewSnapshotService(c.TableRepository, c.Storage, c.Config.Snapshot.Prefix)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()

	if c.Config.Snapshot.Cron == "" {
		logger.Info("Snapshot schedule disabled (SNAPSHOT_CRON not set)")
		return nil
	}

	err := c.JobScheduler.AddJob(snapshotJobID, c.Config.Snapshot.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := c.SnapshotService.Run(ctx)
		if err != nil {
			logger.Error("Scheduled snapshot failed", "error", err)
			return
		}
		logger.Info("Scheduled snapshot finished", "run_id", result.RunID, "tables", len(result.Entries))
	})
	if err != nil {
		return err
	}

	c.JobScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.JobScheduler != nil && c.JobScheduler.IsRunning() {
		c.JobScheduler.Stop()
	}

	if c.ChangePublisher != nil {
		if err := c.ChangePublisher.Close(); err != nil {
			logger.Warn("Failed to close change publisher", "error", err)
		}
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:     c.AuthService,
		GatewayService:  c.GatewayService,
		SEOService:      c.SEOService,
		SnapshotService: c.SnapshotService,
		AppName:         c.Config.App.Name,
		Ping:            c.ping,
	}
}

func (c *Container) ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
