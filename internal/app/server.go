// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"skadeportal-service/internal/config"
	"skadeportal-service/internal/db"
	authHandler "skadeportal-service/internal/handlers/auth"
	claimHandler "skadeportal-service/internal/handlers/claim"
	"skadeportal-service/internal/middleware"
	"skadeportal-service/internal/pkg/jwt"
	"skadeportal-service/internal/pkg/session"
	"skadeportal-service/internal/repository/postgres"
	authUsecase "skadeportal-service/internal/service/auth"
	claimUsecase "skadeportal-service/internal/service/claim"
	"skadeportal-service/internal/service/document"
	tenantUsecase "skadeportal-service/internal/service/tenant"
	"skadeportal-service/internal/storage"
	"skadeportal-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	pool        *pgxpool.Pool
	redisClient *redis.Client
	unsubscribe func()
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	s.redisClient = redisClient

	// ----- Object storage -----
	store, err := storage.NewS3Store(ctx, s.cfg.S3Region, s.cfg.S3Endpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	// ----- JWT & sessions -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}
	sessionManager := session.NewManager(redisClient)

	// The session holder is subscribed at startup and unsubscribed on
	// shutdown; nothing else observes auth transitions directly.
	s.unsubscribe = sessionManager.Subscribe(func(ev session.Event) {
		logger.Info("session transition",
			zap.String("type", string(ev.Type)),
			zap.String("user_id", ev.UserID),
		)
	})

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)

	// ----- Event hub -----
	hub := ws.NewHub(logger)

	// ----- Services -----
	authService := authUsecase.NewAuthService(userRepo, jwtManager, sessionManager, logger)
	tenantService := tenantUsecase.NewService(tenantRepo, logger)
	claimService := claimUsecase.NewClaimService(
		claimRepo,
		tenantRepo,
		store,
		hub,
		claimUsecase.Buckets{
			Signatures:   s.cfg.SignatureBucket,
			DamageImages: s.cfg.DamageImageBucket,
		},
		s.cfg.SignedURLTTL,
		logger,
	)
	documentService := document.NewService(logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, tenantService, logger)
	claimHandlerInst := claimHandler.NewClaimHandler(claimService, documentService, s.cfg.LogoDir, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)
	entitlementMiddleware := middleware.NewEntitlementMiddleware(tenantService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	SetupRouter(s.engine, &Handlers{
		AuthHandler:           authHandlerInst,
		ClaimHandler:          claimHandlerInst,
		AuthMiddleware:        authMiddleware,
		EntitlementMiddleware: entitlementMiddleware,
		Hub:                   hub,
	})

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases held resources.
func (s *Server) Shutdown(ctx context.Context) {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	if s.redisClient != nil {
		_ = s.redisClient.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}
