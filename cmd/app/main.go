package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/cmd"
)

func main() {
	seed := flag.Bool("seed", false, "load the demo menu catalog and exit")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	configs := getConfigs()

	if err := runMigrations(configs); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	gormDB, err := gorm.Open(postgres.Open(postgresDSN(configs)), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if *seed {
		if err := seedMenu(gormDB); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
		log.Info().Msg("menu catalog seeded")
		return
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatal().Err(err).Msg("composition root failed")
	}

	jobLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := root.CreateJobManager(jobLogger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("background jobs failed to start")
	}

	e := echo.New()
	e.HideBanner = true
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := root.ClosePublisher(); err != nil {
		log.Error().Err(err).Msg("kafka close failed")
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Info().Msg("no .env file, using process environment")
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 envOr("DB_USER", "postgres"),
		DBPassword:             envOr("DB_PASSWORD", "postgres"),
		DBName:                 envOr("DB_NAME", "foodorder"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		JWTSecret:              mustEnv("JWT_SECRET"),
		AccessTokenTTL:         envDurationOr("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:        envDurationOr("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		KafkaBrokers:           os.Getenv("KAFKA_BROKERS"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
	}
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return value
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", raw).Msg("invalid duration")
	}
	return value
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func runMigrations(configs cmd.Config) error {
	databaseURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(configs.DBUser), url.QueryEscape(configs.DBPassword),
		configs.DBHost, configs.DBPort, configs.DBName, configs.DBSslMode)

	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
