package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/scintranet/staff-api/api/swagger"
	"github.com/scintranet/staff-api/internal/handler"
	internalmiddleware "github.com/scintranet/staff-api/internal/middleware"
	"github.com/scintranet/staff-api/internal/models"
	"github.com/scintranet/staff-api/internal/repository"
	"github.com/scintranet/staff-api/internal/service"
	"github.com/scintranet/staff-api/pkg/cache"
	"github.com/scintranet/staff-api/pkg/config"
	"github.com/scintranet/staff-api/pkg/database"
	"github.com/scintranet/staff-api/pkg/export"
	"github.com/scintranet/staff-api/pkg/logger"
	"github.com/scintranet/staff-api/pkg/mailer"
	corsmiddleware "github.com/scintranet/staff-api/pkg/middleware/cors"
	reqidmiddleware "github.com/scintranet/staff-api/pkg/middleware/requestid"
)

// @title SCI Intranet Staff API
// @version 1.0.0
// @description Staff intranet backend: events, communications, internships, admissions tracking and signup approvals
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
			cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Cache.CalendarTTL, logr, false)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.CalendarTTL, logr, true)
		}
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Cache.CalendarTTL, logr, false)
	}

	var mail mailer.Mailer
	if cfg.Mailer.Enabled {
		mail = mailer.NewResendMailer(cfg.Mailer.APIKey, cfg.Mailer.FromAddress)
	}

	accountRepo := repository.NewAccountRepository(db)
	pendingRepo := repository.NewPendingUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	commRepo := repository.NewCommunicationRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	admissionsRepo := repository.NewAdmissionsRepository(db)
	seedRepo := repository.NewSeedRepository(db)

	authSvc := service.NewAuthService(accountRepo, pendingRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	approvalSvc := service.NewApprovalService(accountRepo, pendingRepo, mail, logr)
	eventSvc := service.NewEventService(eventRepo, cacheSvc, validate, logr)
	commSvc := service.NewCommunicationService(commRepo, validate, logr)
	internshipSvc := service.NewInternshipService(internshipRepo, validate, logr)
	campaignSvc := service.NewCampaignService(campaignRepo, export.NewCSVExporter(), export.NewPDFExporter(), validate, logr)
	milestoneSvc := service.NewMilestoneService(milestoneRepo, validate, logr)
	todoSvc := service.NewTodoService(todoRepo, validate, logr)
	admissionsSvc := service.NewAdmissionsService(admissionsRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(eventSvc, commSvc, internshipSvc, campaignSvc, milestoneSvc, todoSvc, admissionsSvc, logr)
	seedSvc := service.NewSeedService(seedRepo, cfg.Admin.SeedEnabled, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	approvalHandler := handler.NewApprovalHandler(approvalSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	commHandler := handler.NewCommunicationHandler(commSvc)
	internshipHandler := handler.NewInternshipHandler(internshipSvc)
	campaignHandler := handler.NewCampaignHandler(campaignSvc)
	milestoneHandler := handler.NewMilestoneHandler(milestoneSvc)
	todoHandler := handler.NewTodoHandler(todoSvc)
	admissionsHandler := handler.NewAdmissionsHandler(admissionsSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	seedHandler := handler.NewSeedHandler(seedSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/public/calendar", eventHandler.PublicCalendar)

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(authSvc))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/dashboard", dashboardHandler.Load)

	secured.GET("/events", eventHandler.List)
	secured.POST("/events", eventHandler.Create)
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)

	secured.GET("/communications", commHandler.List)
	secured.POST("/communications", commHandler.Create)
	secured.PUT("/communications/:id", commHandler.Update)
	secured.DELETE("/communications/:id", commHandler.Delete)

	secured.GET("/internships", internshipHandler.List)
	secured.POST("/internships", internshipHandler.Create)
	secured.PUT("/internships/:id", internshipHandler.Update)
	secured.DELETE("/internships/:id", internshipHandler.Delete)

	secured.GET("/campaigns", campaignHandler.List)
	secured.GET("/campaigns/export", campaignHandler.Export)
	secured.POST("/campaigns", campaignHandler.Create)
	secured.PUT("/campaigns/:id", campaignHandler.Update)
	secured.DELETE("/campaigns/:id", campaignHandler.Delete)

	secured.GET("/milestones", milestoneHandler.List)
	secured.POST("/milestones", milestoneHandler.Create)
	secured.PUT("/milestones/:id", milestoneHandler.Update)
	secured.PATCH("/milestones/:id/toggle", milestoneHandler.Toggle)
	secured.DELETE("/milestones/:id", milestoneHandler.Delete)

	secured.GET("/todos", todoHandler.List)
	secured.POST("/todos", todoHandler.Create)
	secured.PUT("/todos/:id", todoHandler.Update)
	secured.PATCH("/todos/:id/toggle", todoHandler.Toggle)
	secured.DELETE("/todos/:id", todoHandler.Delete)

	secured.GET("/admissions-metrics", admissionsHandler.List)
	secured.PUT("/admissions-metrics", admissionsHandler.Save)

	admin := secured.Group("/admin")
	admin.Use(internalmiddleware.RequireRoles(models.RoleSuperAdmin))
	admin.GET("/pending-users", approvalHandler.ListPending)
	admin.POST("/pending-users/:id/accept", approvalHandler.Accept)
	admin.GET("/seed/status", seedHandler.Status)
	admin.POST("/seed", seedHandler.Seed)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
