package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/catalogrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.Level()}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err = seedCatalog(gormDB, configs.CatalogSeedFile, logger); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close application", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded, using process environment")
	}

	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:         goDotEnvVariable("KAFKA_HOST"),
		KafkaAuditTopic:   goDotEnvVariable("KAFKA_AUDIT_TOPIC"),
		RebalanceSchedule: goDotEnvVariable("REBALANCE_SCHEDULE"),
		Timezone:          goDotEnvVariable("TIMEZONE"),
		LogLevel:          goDotEnvVariable("LOG_LEVEL"),
		CatalogSeedFile:   goDotEnvVariable("CATALOG_SEED_FILE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func seedCatalog(db *gorm.DB, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	products, err := catalogrepo.ReadSeed(f)
	if err != nil {
		return err
	}

	if err = catalogrepo.NewGormCatalogRepository(db).Save(context.Background(), products...); err != nil {
		return err
	}

	logger.Info("catalog seeded", "file", path, "products", len(products))
	return nil
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := httpadapter.NewRouter(app.CreateServer(), app.Metrics())
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
