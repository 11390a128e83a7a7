// File: agendly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/cron"
	"agendly/database"
	appointmentRepoPkg "agendly/database/repository/appointment"
	attendantRepoPkg "agendly/database/repository/attendant"
	"agendly/handlers"
	"agendly/middleware"
	"agendly/routes"
	"agendly/services/attendant"
	"agendly/services/booking"
	"agendly/services/distribution"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	businessLoc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	attRepo := attendantRepoPkg.NewMongoAttendantRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	attendantService := &attendant.DefaultAttendantService{
		Repo:  attRepo,
		Cache: utils.GetCacheClient(),
	}

	engine := distribution.NewEngine(distribution.TableFromConfig(), businessLoc, nil)
	distributionService := &distribution.DefaultDistributionService{
		Engine:          engine,
		Attendants:      attendantService,
		AppointmentRepo: apptRepo,
		Sectors: distribution.SectorPolicy{
			General: config.AppConfig.DistributionSectors,
			Upgrade: config.AppConfig.UpgradeSectors,
		},
	}

	bookingService := &booking.DefaultBookingService{
		Distributor:     distributionService,
		Engine:          engine,
		AppointmentRepo: apptRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	attendantHandler := handlers.NewAttendantHandler(attendantService)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler, attendantHandler)

	// Background workers and monitors.
	cron.InitSweepWorker(apptRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
