// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/itsatony/gartentrack/api"
	"github.com/itsatony/gartentrack/internal/config"
	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/repository/sqlite"
	"github.com/itsatony/gartentrack/internal/trackservice"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config    *config.Config
	srv       *http.Server
	service   *trackservice.TrackService
	devicesDB database.DB
	bottlesDB database.DB
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start opens both stores, wires the service and begins listening
func (s *Server) Start() error {
	if err := s.initializeTrackService(); err != nil {
		return err
	}

	router := api.NewRouter(s.service, s.config.Static.Dir)

	// Recovery keeps a panicking handler from killing the process; the
	// combined log gives one access line per request.
	handler := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CombinedLoggingHandler(os.Stdout, router),
	)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.devicesDB.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing devices store: %v", err)
	}
	if err := s.bottlesDB.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing bottles store: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// initializeTrackService opens the two isolated stores, ensures their schemas
// exist and wires the repositories into the service.
func (s *Server) initializeTrackService() error {
	devicesDB, err := database.NewSQLiteDB(s.config.Database.Devices)
	if err != nil {
		return fmt.Errorf("failed to open devices store: %w", err)
	}
	if err := database.EnsureDeviceSchema(devicesDB); err != nil {
		return err
	}

	bottlesDB, err := database.NewSQLiteDB(s.config.Database.Bottles)
	if err != nil {
		return fmt.Errorf("failed to open bottles store: %w", err)
	}
	if err := database.EnsureBottleSchema(bottlesDB); err != nil {
		return err
	}

	s.devicesDB = devicesDB
	s.bottlesDB = bottlesDB

	devices := sqlite.NewDeviceRepository(devicesDB)
	deviceOps := sqlite.NewDeviceOperationRepository(devicesDB)
	bottles := sqlite.NewBottleRepository(bottlesDB)
	bottleOps := sqlite.NewBottleOperationRepository(bottlesDB)

	s.service = trackservice.New(devices, deviceOps, bottles, bottleOps)
	return s.service.Validate()
}
