package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/cache"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/middleware"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	catalogCache *cache.RedisCatalogCache
	rateLimiter  *middleware.RateLimiter

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer creates a new Container with all dependencies wired together.
// An unreachable Redis is logged; catalog reads then fall through to the
// database and the write rate limiter fails open.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure(ctx)
	c.repos = newRepositories(db, c.catalogCache, cfg, log)
	c.ucs = newUseCases(c.repos, log)
	c.hdlrs = newHandlers(c, log)

	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	redisClient, err := cache.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		c.log.Warnw("redis unavailable, catalog cache disabled until it recovers", "error", err)
	} else {
		c.log.Infow("Redis connection established successfully")
	}
	c.redis = redisClient

	c.catalogCache = cache.NewRedisCatalogCache(redisClient, c.log.Named("catalog_cache")).
		WithTTL(c.cfg.Catalog.CacheTTL(), c.cfg.Catalog.CacheTTLJitter(), c.cfg.Catalog.NullMarkerTTL())

	c.rateLimiter = middleware.NewRateLimiter(
		redisClient,
		c.cfg.Server.WriteRateLimit,
		c.cfg.Server.WriteRateWindow(),
		c.log.Named("rate_limiter"),
	)
}

// Shutdown releases the Redis connection. The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
