package di

import (
	"time"

	"gorm.io/gorm"

	"planora/application/serviceimpl"
	"planora/domain/ports"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/infrastructure/gemini"
	natspkg "planora/infrastructure/nats"
	"planora/infrastructure/postgres"
	sessionpkg "planora/infrastructure/session"
	"planora/interfaces/api/handlers"
	"planora/pkg/config"
	"planora/pkg/logger"
	"planora/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB                *gorm.DB
	SessionStore      repositories.SessionStore
	Assistant         ports.AssistantPort
	ActivityPublisher ports.ActivityPublisherPort
	Scheduler         scheduler.MaintenanceScheduler

	// Concrete handles สำหรับ cleanup (SessionStore/ActivityPublisher เป็น interface)
	redisStore    *sessionpkg.RedisStore
	memoryStore   *sessionpkg.MemoryStore
	natsPublisher *natspkg.ActivityPublisher

	// Repositories
	UserRepository    repositories.UserRepository
	TaskRepository    repositories.TaskRepository
	RoadmapRepository repositories.RoadmapRepository
	NoteRepository    repositories.NoteRepository

	// Services
	UserService    services.UserService
	TaskService    services.TaskService
	RoadmapService services.RoadmapService
	NoteService    services.NoteService
	ChatService    services.ChatService
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

	c.initRepositories()
	c.initServices()

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
	// Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Session store: Redis ถ้า config ไว้ ไม่งั้น in-memory fallback
	// (fallback อยู่ได้แค่ process เดียว - session หายตอน restart)
	if c.Config.Redis.URL != "" {
		redisStore, err := sessionpkg.NewRedisStore(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis session store initialization failed, falling back to in-memory", "error", err)
		} else {
			c.redisStore = redisStore
			c.SessionStore = redisStore
		}
	}
	if c.SessionStore == nil {
		c.memoryStore = sessionpkg.NewMemoryStore()
		c.SessionStore = c.memoryStore
		logger.Warn("Using in-memory session store (sessions lost on restart)")
	}

	// Assistant: GEMINI_API_KEY ว่างได้ - chat ตอบ error แทนที่จะ fail startup
	c.Assistant = gemini.NewClient(&c.Config.Assistant)
	if c.Config.Assistant.APIKey == "" {
		logger.Warn("Assistant disabled (GEMINI_API_KEY not configured)")
	} else {
		logger.Info("Assistant client initialized", "model", c.Config.Assistant.Model)
	}

	// Activity publisher (optional - NATS ไม่มีก็ไม่เป็นไร)
	if c.Config.NATS.URL != "" {
		publisher, err := natspkg.NewActivityPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS publisher initialization failed (activity events disabled)", "error", err)
			c.ActivityPublisher = natspkg.NoopPublisher{}
		} else {
			c.natsPublisher = publisher
			c.ActivityPublisher = publisher
			logger.Info("NATS activity publisher initialized", "url", c.Config.NATS.URL)
		}
	} else {
		c.ActivityPublisher = natspkg.NoopPublisher{}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.RoadmapRepository = postgres.NewRoadmapRepository(c.DB)
	c.NoteRepository = postgres.NewNoteRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.SessionStore,
		c.Config.Session.Secret,
		c.Config.Session.TTL,
	)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.ActivityPublisher)
	c.RoadmapService = serviceimpl.NewRoadmapService(c.RoadmapRepository, c.ActivityPublisher)
	c.NoteService = serviceimpl.NewNoteService(c.NoteRepository, c.ActivityPublisher)
	c.ChatService = serviceimpl.NewChatService(c.TaskRepository, c.Assistant)
	logger.Info("Services initialized")
}

func (c *Container) initScheduler() error {
	c.Scheduler = scheduler.NewMaintenanceScheduler()

	// Redis หมดอายุ session เองผ่าน TTL - sweep จำเป็นแค่กับ in-memory store
	if c.memoryStore != nil {
		store := c.memoryStore
		err := c.Scheduler.AddJob("session-sweep", "*/10 * * * *", func() {
			removed := store.Sweep(time.Now())
			if removed > 0 {
				logger.Info("Expired sessions swept", "removed", removed, "active", store.Len())
			}
		})
		if err != nil {
			return err
		}
	}

	c.Scheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.Scheduler != nil && c.Scheduler.IsRunning() {
		c.Scheduler.Stop()
	}

	if c.natsPublisher != nil {
		c.natsPublisher.Close()
		logger.Info("NATS connection closed")
	}

	if c.redisStore != nil {
		if err := c.redisStore.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
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
		UserService:    c.UserService,
		TaskService:    c.TaskService,
		RoadmapService: c.RoadmapService,
		NoteService:    c.NoteService,
		ChatService:    c.ChatService,
		SessionConfig:  c.Config.Session,
	}
}
