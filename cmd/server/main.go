package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homekeep/api/internal/cache"
	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/database"
	"github.com/homekeep/api/internal/handlers"
	"github.com/homekeep/api/internal/images"
	"github.com/homekeep/api/internal/logger"
	"github.com/homekeep/api/internal/middleware"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/repository"
	"github.com/homekeep/api/internal/services"
	"github.com/homekeep/api/internal/store"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting HomeKeep API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	if err := db.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", err, nil)
	}

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Initialize the document store and repositories
	docs := store.New(db)
	houseRepo := repository.NewHouseRepository(docs)
	systemRepo := repository.NewSystemRepository(docs)
	incidentRepo := repository.NewIncidentRepository(docs)
	contactRepo := repository.NewContactRepository(docs)
	parkingRepo := repository.NewParkingRepository(docs)
	vehicleRepo := repository.NewVehicleRepository(docs)

	// House name lookup cache. A missing REDIS_ADDR disables it and name
	// lookups hit the database directly.
	redisClient := cache.NewClient(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}
	names := cache.NewHouseNames(redisClient, houseRepo, log)
	if names.Enabled() {
		if err := names.Ping(ctx); err != nil {
			log.Warn("Redis unreachable at startup, continuing without cache hits", map[string]interface{}{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
		} else {
			log.Info("Cache connection established", map[string]interface{}{"addr": cfg.Redis.Addr})
		}
	}

	// Initialize service layer
	sorter := models.NewSorter(cfg.Locale)
	houseService := services.NewHouseService(houseRepo, systemRepo, incidentRepo, parkingRepo, vehicleRepo, names, sorter, log)
	systemService := services.NewSystemService(systemRepo, names, cfg.Codes.SequenceScope, sorter, log)
	incidentService := services.NewIncidentService(incidentRepo, systemRepo, names, sorter, log)
	contactService := services.NewContactService(contactRepo, sorter, log)
	parkingService := services.NewParkingService(parkingRepo, names, sorter, log)
	vehicleService := services.NewVehicleService(vehicleRepo, names, sorter, log)

	imageClient := images.New(cfg.Images, log)

	// Initialize handlers
	houseHandler := handlers.NewHouseHandler(houseService)
	systemHandler := handlers.NewSystemHandler(systemService)
	incidentHandler := handlers.NewIncidentHandler(incidentService)
	contactHandler := handlers.NewContactHandler(contactService)
	parkingHandler := handlers.NewParkingHandler(parkingService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	imageHandler := handlers.NewImageHandler(imageClient)
	reportHandler := handlers.NewReportHandler(houseService, systemService, incidentService, contactService, parkingService, vehicleService)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, names, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Register API v1 routes behind the token gate
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Auth.Token))
	{
		houses := v1.Group("/houses")
		{
			houses.GET("", houseHandler.List)
			houses.POST("", houseHandler.Create)
			houses.GET("/:id", houseHandler.Get)
			houses.PUT("/:id", houseHandler.Update)
			houses.DELETE("/:id", houseHandler.Delete)
			houses.GET("/:id/systems", systemHandler.ListByHouse)
			houses.GET("/:id/incidents", incidentHandler.ListByHouse)
			houses.GET("/:id/contacts", contactHandler.ListByHouse)
			houses.GET("/:id/parkings", parkingHandler.ListByHouse)
			houses.GET("/:id/vehicles", vehicleHandler.ListByHouse)
			houses.GET("/:id/export", reportHandler.ExportHouse)
		}

		systems := v1.Group("/systems")
		{
			systems.GET("", systemHandler.List)
			systems.POST("", systemHandler.Create)
			systems.GET("/:id", systemHandler.Get)
			systems.PUT("/:id", systemHandler.Update)
			systems.DELETE("/:id", systemHandler.Delete)
			systems.GET("/:id/incidents", incidentHandler.ListBySystem)
		}

		incidents := v1.Group("/incidents")
		{
			incidents.GET("", incidentHandler.List)
			incidents.POST("", incidentHandler.Create)
			incidents.GET("/:id", incidentHandler.Get)
			incidents.PUT("/:id", incidentHandler.Update)
			incidents.PATCH("/:id/status", incidentHandler.UpdateStatus)
			incidents.DELETE("/:id", incidentHandler.Delete)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.List)
			contacts.POST("", contactHandler.Create)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		parkings := v1.Group("/parkings")
		{
			parkings.GET("", parkingHandler.List)
			parkings.POST("", parkingHandler.Create)
			parkings.GET("/:id", parkingHandler.Get)
			parkings.PUT("/:id", parkingHandler.Update)
			parkings.DELETE("/:id", parkingHandler.Delete)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.List)
			vehicles.POST("", vehicleHandler.Create)
			vehicles.GET("/:id", vehicleHandler.Get)
			vehicles.PUT("/:id", vehicleHandler.Update)
			vehicles.DELETE("/:id", vehicleHandler.Delete)
		}

		v1.POST("/images", imageHandler.Upload)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
