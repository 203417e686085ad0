package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/artjalyuzi/admin-panel/src/config"
	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/handlers"
	"github.com/artjalyuzi/admin-panel/src/logging"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/artjalyuzi/admin-panel/src/templates"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("api_base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("starting admin panel")

	// Session cookies are signed; an unusable secret is fatal
	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session manager")
	}

	// Shared HTTP adapter and per-resource gateways
	client := gateway.NewClient(cfg.APIBaseURL)
	authGW := gateway.NewAuthGateway(client)
	bannerGW := gateway.NewBannerGateway(client)
	serviceGW := gateway.NewServiceGateway(client)
	portfolioGW := gateway.NewPortfolioGateway(client)
	contactGW := gateway.NewContactGateway(client)

	tmpl, err := templates.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	// Create Gin router
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowedOrigins,
			AllowMethods:  []string{"GET"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	setupRoutes(router, cfg, sessions, client, authGW, bannerGW, serviceGW, portfolioGW, contactGW)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	sessions *session.Manager,
	client *gateway.Client,
	authGW *gateway.AuthGateway,
	bannerGW *gateway.BannerGateway,
	serviceGW *gateway.ServiceGateway,
	portfolioGW *gateway.PortfolioGateway,
	contactGW *gateway.ContactGateway,
) {
	authHandler := handlers.NewAuthHandler(authGW, sessions)
	dashboardHandler := handlers.NewDashboardHandler(contactGW, sessions)
	bannerHandler := handlers.NewBannerHandler(bannerGW, sessions)
	serviceHandler := handlers.NewServiceHandler(serviceGW, sessions)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioGW, sessions)
	contactHandler := handlers.NewContactHandler(contactGW, sessions)
	adminHandler := handlers.NewAdminHandler(authGW, sessions)
	healthHandler := handlers.NewHealthHandler(client)

	router.GET("/healthz", healthHandler.HandleHealth)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	router.GET("/login", authHandler.HandleLoginPage)
	router.POST("/login",
		middleware.LoginRateLimitMiddleware(middleware.RateLimitConfig{
			RequestsPerMinute: cfg.LoginRatePerMinute,
			Burst:             cfg.LoginRateBurst,
		}),
		authHandler.HandleLogin,
	)
	router.POST("/logout", authHandler.HandleLogout)

	// Every page below requires a verified session
	dashboard := router.Group("/dashboard", middleware.SessionGuard(sessions, authGW))

	dashboard.GET("", dashboardHandler.HandleHome)

	dashboard.GET("/banners", bannerHandler.HandleList)
	dashboard.GET("/banners/new", bannerHandler.HandleNewForm)
	dashboard.POST("/banners/new", bannerHandler.HandleCreate)
	dashboard.GET("/banners/:id/edit", bannerHandler.HandleEditForm)
	dashboard.POST("/banners/:id/edit", bannerHandler.HandleUpdate)
	dashboard.GET("/banners/:id/delete", bannerHandler.HandleDeleteConfirm)
	dashboard.POST("/banners/:id/delete", bannerHandler.HandleDelete)

	dashboard.GET("/services", serviceHandler.HandleList)
	dashboard.GET("/services/new", serviceHandler.HandleNewForm)
	dashboard.POST("/services/new", serviceHandler.HandleCreate)
	dashboard.GET("/services/:id/edit", serviceHandler.HandleEditForm)
	dashboard.POST("/services/:id/edit", serviceHandler.HandleUpdate)
	dashboard.GET("/services/:id/delete", serviceHandler.HandleDeleteConfirm)
	dashboard.POST("/services/:id/delete", serviceHandler.HandleDelete)

	dashboard.GET("/portfolios", portfolioHandler.HandleList)
	dashboard.GET("/portfolios/new", portfolioHandler.HandleNewForm)
	dashboard.POST("/portfolios/new", portfolioHandler.HandleCreate)
	dashboard.GET("/portfolios/:id/edit", portfolioHandler.HandleEditForm)
	dashboard.POST("/portfolios/:id/edit", portfolioHandler.HandleUpdate)
	dashboard.GET("/portfolios/:id/delete", portfolioHandler.HandleDeleteConfirm)
	dashboard.POST("/portfolios/:id/delete", portfolioHandler.HandleDelete)

	dashboard.GET("/contacts", contactHandler.HandleList)

	dashboard.GET("/admin", adminHandler.HandleProfilePage)
	dashboard.POST("/admin", adminHandler.HandleProfileUpdate)
}
