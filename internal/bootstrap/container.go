package bootstrap

import (
	"context"
	"log"

	"lms-presentation-be/internal/config"
	"lms-presentation-be/internal/controller"
	"lms-presentation-be/internal/pkg/cache"
	"lms-presentation-be/internal/pkg/logger"
	"lms-presentation-be/internal/repository/memory"
	"lms-presentation-be/internal/repository/unitofwork"
	"lms-presentation-be/internal/service"
	"lms-presentation-be/pkg/export"
	"lms-presentation-be/pkg/grid"
	"lms-presentation-be/pkg/layout"
	pktNats "lms-presentation-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PresentationController controller.IPresentationController
	LayoutController       controller.ILayoutController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	catalog := layout.NewCatalog()
	canvas := grid.NewInchCanvas(cfg.Export.CanvasWidth, cfg.Export.CanvasHeight)
	exporter := export.NewExporter(export.NewPptxWriter(canvas), catalog)
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL)

	c := &Container{}

	// 2. Export cache, shared across instances when Redis is configured
	var exportCache cache.ExportCache = cache.NewMemoryExportCache(cfg.Export.CacheTTL)
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory export cache", err)
			_ = rdb.Close()
		} else {
			exportCache = cache.NewRedisExportCache(rdb, cfg.Export.CacheTTL)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var eventPublisher service.IEventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Export.TopicName, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Export.TopicName,
		uowFactory,
		exporter,
		exportCache,
		sysLogger,
	)

	presentationService := service.NewPresentationService(
		uowFactory,
		sessionRepo,
		catalog,
		exporter,
		exportCache,
		publisherService,
		eventPublisher,
		sysLogger,
	)

	// 5. Controllers
	c.PresentationController = controller.NewPresentationController(presentationService)
	c.LayoutController = controller.NewLayoutController(presentationService)

	return c
}

// Close releases broker and cache connections in reverse order of creation
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
