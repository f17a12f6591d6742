package bootstrap

import (
	"context"
	"log"

	"guide-catalog-be/internal/config"
	"guide-catalog-be/internal/controller"
	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/internal/repository/contract"
	"guide-catalog-be/internal/repository/implementation"
	"guide-catalog-be/internal/repository/memory"
	"guide-catalog-be/internal/repository/unitofwork"
	"guide-catalog-be/internal/service"
	"guide-catalog-be/pkg/guide"

	pktNats "guide-catalog-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GuideController controller.GuideController

	// Background wiring (exposed for main.go)
	SubscriptionEvents service.ISubscriptionEventService
	Subscriber         *pktNats.Subscriber // nil when NATS is unreachable
	Logger             logger.ILogger

	redis *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	// 2. Infrastructure
	// Redis (shared quota cache). Without it every request reads the plan from the database.
	var quotaCache contract.QuotaCacheRepository
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (quota cache disabled)", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		quotaCache = implementation.NewQuotaCacheRepository(rdb, cfg.Catalog.QuotaCacheTTL)
	}

	// NATS
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

	// 3. Services
	env := cfg.Catalog.Environment()
	log.Printf("[INFO] Guide catalog environment: cloud=%t devFeatures=%t", env.IsCloud, env.IsDevFeaturesEnabled)

	quotaService := service.NewQuotaService(uowFactory, quotaCache, sysLogger)
	guideService := service.NewGuideService(
		guide.BuiltinCorpus,
		env,
		quotaService,
		memory.NewGuideCacheRepository(),
		sysLogger,
	)
	subscriptionEvents := service.NewSubscriptionEventService(quotaService, eventLogger)

	// 4. Controllers
	return &Container{
		GuideController:    controller.NewGuideController(guideService),
		SubscriptionEvents: subscriptionEvents,
		Subscriber:         natsSub,
		Logger:             sysLogger,
		redis:              rdb,
	}
}

// Close releases connections opened by NewContainer
func (c *Container) Close() {
	if c.Subscriber != nil {
		c.Subscriber.Close()
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
	_ = c.Logger.Sync()
}
