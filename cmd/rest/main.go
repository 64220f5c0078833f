package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinical-notes-be/internal/bootstrap"
	"clinical-notes-be/internal/config"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/server"
	"clinical-notes-be/internal/tracer"
	"clinical-notes-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Tracing (off unless OTEL_ENABLED=true)
	shutdownTracer, err := tracer.InitTracer(ctx, cfg.Observability)
	if err != nil {
		sysLogger.Warn("BOOT", "Tracing disabled", map[string]interface{}{"error": err.Error()})
	}
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 4. External gateways
	gateways, err := bootstrap.NewGateways(ctx, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to initialize gateways: %v", err)
	}
	defer gateways.Close()

	// 5. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg, gateways, sysLogger)
	defer container.Bus.Close()

	if err := container.EventRelay.Consume(ctx); err != nil {
		sysLogger.Error("EVENTS", "Event relay did not start", map[string]interface{}{"error": err.Error()})
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Run(); err != nil {
		sysLogger.Error("BOOT", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
