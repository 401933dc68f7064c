package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-manager/internal/config"
	infraCache "library-manager/internal/infrastructure/cache"
	"library-manager/internal/infrastructure/database"
	"library-manager/pkg/cache"

	authorHandler "library-manager/internal/domains/author/handler"
	authorRepo "library-manager/internal/domains/author/repository"
	authorService "library-manager/internal/domains/author/service"

	genreHandler "library-manager/internal/domains/genre/handler"
	genreRepo "library-manager/internal/domains/genre/repository"
	genreService "library-manager/internal/domains/genre/service"

	userHandler "library-manager/internal/domains/user/handler"
	userRepo "library-manager/internal/domains/user/repository"
	userService "library-manager/internal/domains/user/service"

	bookHandler "library-manager/internal/domains/book/handler"
	bookRepo "library-manager/internal/domains/book/repository"
	bookService "library-manager/internal/domains/book/service"

	borrowHandler "library-manager/internal/domains/borrow/handler"
	borrowRepo "library-manager/internal/domains/borrow/repository"
	borrowService "library-manager/internal/domains/borrow/service"
)

const (
	startupPingTimeout = 5 * time.Second
	redisKeyPrefix     = "library:"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// Both the CLI and the HTTP API are built from it.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config    *config.Config
	Connector database.Connector
	DB        *database.Executor
	Cache     cache.Cache

	redis *infraCache.RedisClient

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	GenreRepo  genreRepo.RepositoryInterface
	UserRepo   userRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface
	Ledger     borrowRepo.LedgerInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	AuthorService authorService.Service
	GenreService  genreService.Service
	UserService   userService.Service
	BookService   bookService.Service
	BorrowService borrowService.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	GenreHandler  *genreHandler.GenreHandler
	UserHandler   *userHandler.UserHandler
	BookHandler   *bookHandler.BookHandler
	BorrowHandler *borrowHandler.BorrowHandler
}

// NewContainer builds the dependency graph on the configured driver.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Str("app", cfg.App.Name).Msg("Initializing container...")

	connector, err := database.NewConnector(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connector: %w", err)
	}

	return Build(cfg, connector)
}

// Build wires the graph on top of an existing connector.
//
// Order matters:
// 1. Infrastructure (executor, cache)
// 2. Repositories
// 3. Services
// 4. Handlers
func Build(cfg *config.Config, connector database.Connector) (*Container, error) {
	c := &Container{
		Config:    cfg,
		Connector: connector,
		DB:        database.NewExecutor(connector),
	}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	// There is no pool to open. The ping only tells the operator early that
	// the database is unreachable; every operation connects on its own.
	log.Info().Str("database", cfg.Database.String()).Msg("Checking database...")

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := c.DB.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Database not reachable at startup (non-critical)")
	} else {
		log.Info().Msg("Database reachable")
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

// initCache uses Redis when enabled and reachable, otherwise an in-process cache.
// Redis failure is not critical.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		c.Cache = infraCache.NewMemoryCache(c.Config.Redis.MemorySize)
		log.Info().Int("max_entries", c.Config.Redis.MemorySize).Msg("Using in-memory lookup cache")
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), using in-memory cache")
		if closeErr := rc.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close Redis client")
		}
		c.Cache = infraCache.NewMemoryCache(c.Config.Redis.MemorySize)
		return
	}

	c.redis = rc
	c.Cache = infraCache.NewRedisCache(rc, redisKeyPrefix)
}

func (c *Container) initRepositories() {
	ttl := c.Config.Redis.TTL

	c.AuthorRepo = authorRepo.NewSQLRepository(c.DB, c.Cache, ttl)
	c.GenreRepo = genreRepo.NewSQLRepository(c.DB, c.Cache, ttl)
	c.UserRepo = userRepo.NewSQLRepository(c.DB)
	c.BookRepo = bookRepo.NewSQLRepository(c.DB)
	c.Ledger = borrowRepo.NewSQLLedger(c.DB)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorService, c.GenreService)
	c.BorrowService = borrowService.NewBorrowService(c.Ledger, c.BookRepo, time.Now)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.BorrowHandler = borrowHandler.NewBorrowHandler(c.BorrowService, c.UserService)
}

// Cleanup releases what outlives a single operation. Database connections
// never do, so only Redis is closed here.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
	log.Info().Msg("Container cleanup completed")
}
