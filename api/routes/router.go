package routes

import (
	"net/http"
	"time"

	"biletsfera/internal/analytics"
	"biletsfera/internal/artists"
	"biletsfera/internal/auth"
	"biletsfera/internal/cart"
	"biletsfera/internal/events"
	"biletsfera/internal/notifications"
	"biletsfera/internal/seats"
	"biletsfera/internal/shared/config"
	"biletsfera/internal/shared/database"
	"biletsfera/internal/shared/middleware"
	"biletsfera/internal/tickets"
	"biletsfera/internal/transactions"
	"biletsfera/pkg/cache"
	"biletsfera/pkg/logger"
	"biletsfera/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	log          *logger.Logger
	saleProducer notifications.SaleProducer

	cacheService cache.Service
	seatService  seats.Service // injected into events and transactions
	cartService  cart.Service  // injected into transactions for post-commit clearing
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, log *logger.Logger, saleProducer notifications.SaleProducer) *Router {
	return &Router{
		config:       cfg,
		db:           db,
		log:          log,
		saleProducer: saleProducer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/metrics", metrics.Handler())

	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedisClient())
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Seats must come before events and transactions for injection
		r.setupSeatRoutes(api)
		r.setupEventRoutes(api)
		r.setupArtistRoutes(api)
		r.setupTicketRoutes(api)

		r.setupCartRoutes(api)
		r.setupTransactionRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "biletsfera-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "biletsfera-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config, r.log)
	authController := auth.NewController(authService)

	auth.RegisterRoutes(rg, authController, middleware.JWTAuthWithConfig(r.config))
}

func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	r.seatService = seats.NewService(seatRepo)
	seatController := seats.NewController(r.seatService)

	seats.RegisterRoutes(rg, seatController)
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)

	if r.seatService != nil {
		eventService.SetSeatService(r.seatService)
	}

	eventController := events.NewController(eventService)
	events.SetupEventRoutes(rg, eventController)
}

func (r *Router) setupArtistRoutes(rg *gin.RouterGroup) {
	artistRepo := artists.NewRepository(r.db.GetPostgreSQL())
	artistService := artists.NewService(artistRepo)
	artistController := artists.NewController(artistService)

	artists.SetupArtistRoutes(rg, artistController)
}

func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo)
	ticketController := tickets.NewController(ticketService)

	tickets.SetupTicketRoutes(rg, ticketController)
}

func (r *Router) setupCartRoutes(rg *gin.RouterGroup) {
	cartRepo := cart.NewRepository(r.db.GetPostgreSQL())
	r.cartService = cart.NewService(cartRepo, r.cacheService, r.config.Redis.CartCacheTTL)
	cartController := cart.NewController(r.cartService)

	cart.RegisterRoutes(rg, cartController, middleware.JWTAuthWithConfig(r.config))
}

func (r *Router) setupTransactionRoutes(rg *gin.RouterGroup) {
	txnRepo := transactions.NewRepository(r.db.GetPostgreSQL(), r.seatService)
	txnService := transactions.NewService(txnRepo, r.saleProducer, r.cartService, r.cacheService, r.log)
	txnController := transactions.NewController(txnService)

	transactions.RegisterRoutes(rg, txnController, middleware.JWTAuthWithConfig(r.config))
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	statsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	statsService := analytics.NewService(statsRepo, r.cacheService, r.config.Redis.StatsCacheTTL)
	statsController := analytics.NewController(statsService)

	analytics.RegisterRoutes(rg, statsController, middleware.JWTAuthWithConfig(r.config))
}
