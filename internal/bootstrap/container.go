package bootstrap

import (
	"log"

	"fundoo-notes-be/internal/config"
	"fundoo-notes-be/internal/controller"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/pkg/mailer"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/pkg/storage"
	"fundoo-notes-be/internal/repository/unitofwork"
	"fundoo-notes-be/internal/service"
	"fundoo-notes-be/pkg/cache"
	pktNats "fundoo-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const mailTopicName = "SEND_EMAIL"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	NoteController         controller.INoteController
	LabelController        controller.ILabelController
	CollaboratorController controller.ICollaboratorController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	// Infrastructure handles for shutdown and the event worker
	Logger        logger.ILogger
	CacheStore    cache.Store
	EventPub      *pktNats.Publisher
	EventSub      *pktNats.Subscriber
	UploadStorage *storage.LocalStorage
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Mail Queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

	// Redis when configured, in-process cache otherwise.
	var cacheStore cache.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cache", err)
			cacheStore = cache.NewMemoryStore()
		} else {
			cacheStore = redisStore
		}
	} else {
		cacheStore = cache.NewMemoryStore()
	}

	uploadStorage, err := storage.NewLocalStorage(cfg.App.UploadDir, cfg.App.BaseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload storage: %v", err)
	}

	serverutils.SetJWTSecret(cfg.Auth.JWTSecret)
	rateLimiter := serverutils.NewRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, mailTopicName)
	consumerService := service.NewConsumerService(pubSub, mailTopicName, emailService, sysLogger)

	authService := service.NewAuthService(uowFactory, publisherService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, uploadStorage)
	noteService := service.NewNoteService(uowFactory, cacheStore, natsPub, sysLogger)
	labelService := service.NewLabelService(uowFactory, cacheStore, sysLogger)
	collaboratorService := service.NewCollaboratorService(uowFactory, publisherService, cacheStore, natsPub, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService, rateLimiter),
		UserController:         controller.NewUserController(userService),
		NoteController:         controller.NewNoteController(noteService),
		LabelController:        controller.NewLabelController(labelService),
		CollaboratorController: controller.NewCollaboratorController(collaboratorService),
		NotificationController: controller.NewNotificationController(notificationService),

		ConsumerService:     consumerService,
		NotificationService: notificationService,

		Logger:        sysLogger,
		CacheStore:    cacheStore,
		EventPub:      natsPub,
		EventSub:      natsSub,
		UploadStorage: uploadStorage,
	}
}
