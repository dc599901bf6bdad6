package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accessusecases "gymgate/internal/application/access/usecases"
	authusecases "gymgate/internal/application/auth/usecases"
	clientusecases "gymgate/internal/application/client/usecases"
	membershipusecases "gymgate/internal/application/membership/usecases"
	infraauth "gymgate/internal/infrastructure/auth"
	"gymgate/internal/infrastructure/config"
	"gymgate/internal/infrastructure/email"
	"gymgate/internal/infrastructure/ratelimit"
	"gymgate/internal/infrastructure/repository"
	"gymgate/internal/interfaces/http/handlers"
	"gymgate/internal/interfaces/http/middleware"
	"gymgate/internal/shared/db"
	"gymgate/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config

	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	turnstileHandler    *handlers.TurnstileHandler
	clientHandler       *handlers.ClientHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
	accessLogHandler    *handlers.AccessLogHandler

	jwtService  *infraauth.JWTService
	rateLimiter ratelimit.RateLimiter
	log         logger.Interface
}

func NewRouter(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) *Router {
	log := logger.NewLogger()

	clientRepo := repository.NewClientRepository(database, log)
	planRepo := repository.NewPlanRepository(database, log)
	subRepo := repository.NewSubscriptionRepository(database, log)
	logRepo := repository.NewAccessLogRepository(database, log)

	txManager := db.NewTransactionManager(database)
	alertMailer := email.NewAlertMailer(&cfg.Email)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := infraauth.NewBcryptPasswordHasher(0)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	evaluateUC := accessusecases.NewEvaluateAccessUseCase(
		clientRepo, subRepo, planRepo, logRepo,
		txManager, alertMailer,
		cfg.Turnstile.MaxDecisionRetries, log,
	)
	listLogUC := accessusecases.NewListAccessLogUseCase(logRepo, clientRepo, log)
	loginUC := authusecases.NewLoginUseCase(&cfg.Auth, hasher, jwtService, log)

	r := &Router{
		engine: gin.New(),
		cfg:    cfg,

		healthHandler:    handlers.NewHealthHandler(database),
		authHandler:      handlers.NewAuthHandler(loginUC),
		turnstileHandler: handlers.NewTurnstileHandler(evaluateUC),
		clientHandler: handlers.NewClientHandler(
			clientusecases.NewCreateClientUseCase(clientRepo, log),
			clientusecases.NewGetClientUseCase(clientRepo, log),
			clientusecases.NewListClientsUseCase(clientRepo, log),
			clientusecases.NewUpdateClientUseCase(clientRepo, log),
			clientusecases.NewDeleteClientUseCase(clientRepo, log),
		),
		planHandler: handlers.NewPlanHandler(
			membershipusecases.NewCreatePlanUseCase(planRepo, log),
			membershipusecases.NewGetPlanUseCase(planRepo, log),
			membershipusecases.NewListPlansUseCase(planRepo, log),
			membershipusecases.NewUpdatePlanUseCase(planRepo, log),
			membershipusecases.NewDeletePlanUseCase(planRepo, log),
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			membershipusecases.NewCreateSubscriptionUseCase(clientRepo, planRepo, subRepo, log),
			membershipusecases.NewListClientSubscriptionsUseCase(clientRepo, subRepo, planRepo, log),
			membershipusecases.NewAddVisitsUseCase(subRepo, clientRepo, planRepo, cfg.Turnstile.MaxDecisionRetries, log),
			membershipusecases.NewDeactivateSubscriptionUseCase(subRepo, clientRepo, planRepo, log),
		),
		accessLogHandler: handlers.NewAccessLogHandler(listLogUC),

		jwtService:  jwtService,
		rateLimiter: limiter,
		log:         log,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.healthHandler.Check)

	api := r.engine.Group("/api")
	{
		api.POST("/auth/login", r.authHandler.Login)

		// The gate endpoint authenticates with a shared device token, not
		// a staff JWT. The limiter guards against a reader stuck in a
		// recognition loop.
		turnstile := api.Group("/turnstile")
		turnstile.Use(middleware.DeviceToken(r.cfg.Turnstile.DeviceToken))
		turnstile.Use(middleware.TurnstileRateLimit(r.rateLimiter, r.cfg.Turnstile.RequestsPerMinute, r.log))
		{
			turnstile.POST("/access", r.turnstileHandler.Access)
		}
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.StaffAuth(r.jwtService))
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", r.clientHandler.Create)
			clients.GET("", r.clientHandler.List)
			clients.GET("/:sid", r.clientHandler.Get)
			clients.PUT("/:sid", r.clientHandler.Update)
			clients.DELETE("/:sid", r.clientHandler.Delete)
			clients.GET("/:sid/subscriptions", r.subscriptionHandler.ListByClient)
		}

		plans := v1.Group("/plans")
		{
			plans.POST("", r.planHandler.Create)
			plans.GET("", r.planHandler.List)
			plans.GET("/:sid", r.planHandler.Get)
			plans.PUT("/:sid", r.planHandler.Update)
			plans.DELETE("/:sid", r.planHandler.Delete)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("", r.subscriptionHandler.Create)
			subscriptions.POST("/:sid/visits", r.subscriptionHandler.AddVisits)
			subscriptions.POST("/:sid/deactivate", r.subscriptionHandler.Deactivate)
		}

		v1.GET("/access-logs", r.accessLogHandler.List)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
