package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/careerbrew/careerbrew-api/config"
	"github.com/careerbrew/careerbrew-api/internal/cache"
	"github.com/careerbrew/careerbrew-api/internal/handlers"
	"github.com/careerbrew/careerbrew-api/internal/middleware"
	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/internal/repository"
	"github.com/careerbrew/careerbrew-api/internal/services"
	"github.com/careerbrew/careerbrew-api/pkg/db"
	"github.com/careerbrew/careerbrew-api/pkg/jwt"
	"github.com/careerbrew/careerbrew-api/pkg/logger"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	"github.com/careerbrew/careerbrew-api/pkg/profiling"
	"github.com/careerbrew/careerbrew-api/pkg/storage"
	"github.com/careerbrew/careerbrew-api/pkg/tracing"
)

// registerRoutes wires the API surface. Everything under /api/v1 requires a
// valid session token.
func registerRoutes(
	router *gin.Engine,
	tokenManager *jwt.TokenManager,
	generalRateLimiter, writeRateLimiter, uploadRateLimiter *middleware.RateLimiter,
	healthHandler *handlers.HealthHandler,
	profileHandler *handlers.ProfileHandler,
	matchHandler *handlers.MatchHandler,
	requestHandler *handlers.RequestHandler,
	testimonialHandler *handlers.TestimonialHandler,
) {
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.Use(generalRateLimiter.Middleware())
	v1.Use(middleware.SessionMiddleware(tokenManager))
	v1.Use(middleware.BodySizeLimitMiddleware(100 * 1024))

	// Profile
	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile/skills", writeRateLimiter.Middleware(), profileHandler.UpdateSkills)
	v1.POST("/profile/avatar", uploadRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(15*1024*1024), profileHandler.UploadAvatar)

	// Matching
	v1.POST("/matches/start", matchHandler.StartMatching)
	v1.GET("/matches", matchHandler.GetMatches)
	v1.GET("/matches/current", matchHandler.CurrentMatch)
	v1.POST("/matches/next", matchHandler.NextMatch)
	v1.POST("/matches/previous", matchHandler.PreviousMatch)

	// Mentorship requests
	v1.GET("/requests/check", requestHandler.CheckDuplicate)
	v1.GET("/requests", requestHandler.ListRequests)
	v1.POST("/requests", writeRateLimiter.Middleware(), requestHandler.CreateRequest)
	v1.POST("/requests/:id/status", writeRateLimiter.Middleware(), requestHandler.UpdateStatus)

	// Testimonials
	v1.GET("/mentors/:mentorId/testimonials", testimonialHandler.List)
	v1.GET("/mentors/:mentorId/testimonials/stats", testimonialHandler.GetStats)
	v1.GET("/mentors/:mentorId/testimonials/can-write", testimonialHandler.CanWrite)
	v1.POST("/mentors/:mentorId/testimonials", writeRateLimiter.Middleware(), testimonialHandler.Submit)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting CareerBrew API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Error("Failed to initialize profiler", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	metrics.RecordInfrastructureMetrics()

	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// Object storage for avatar uploads; optional in local development
	var storageClient services.StorageClient
	if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		client, err := storage.NewClient(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			cfg.Storage.BucketName,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize storage client", zap.Error(err))
		}
		storageClient = client
	} else {
		logger.Warn("Object storage not configured, avatar uploads disabled")
	}

	// Repositories
	menteeRepo := repository.NewMenteeRepository(pool)
	mentorRepo := repository.NewMentorRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)

	// Candidate pool cache, populated before the server accepts traffic
	candidateCache := cache.NewCandidateCache(
		func(ctx context.Context) ([]*models.MentorCandidate, error) {
			return mentorRepo.GetActiveCandidates(ctx, cfg.Matching.MaxCandidates)
		},
		cfg.Cache.CandidateTTLSeconds,
	)
	if err := candidateCache.Initialize(context.Background()); err != nil {
		logger.Fatal("Failed to initialize candidate cache", zap.Error(err))
	}

	sessionStore := cache.NewSessionStore(cfg.Cache.MatchSessionTTLSeconds)
	tokenManager := jwt.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTLHours)

	// Services
	profileService := services.NewProfileService(menteeRepo, mentorRepo, storageClient)
	matchingService := services.NewMatchingService(profileService, candidateCache, sessionStore, cfg.Matching.MaxCandidates)
	requestService := services.NewRequestService(requestRepo, mentorRepo)
	testimonialService := services.NewTestimonialService(testimonialRepo, mentorRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(candidateCache.IsReady, pool.Ping)
	profileHandler := handlers.NewProfileHandler(profileService)
	matchHandler := handlers.NewMatchHandler(matchingService)
	requestHandler := handlers.NewRequestHandler(requestService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	writeRateLimiter := middleware.NewRateLimiter(10, 20)     // mutations
	uploadRateLimiter := middleware.NewRateLimiter(1, 3)      // avatar uploads

	registerRoutes(router, tokenManager,
		generalRateLimiter, writeRateLimiter, uploadRateLimiter,
		healthHandler, profileHandler, matchHandler, requestHandler, testimonialHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
