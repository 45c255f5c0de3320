package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yardwords/internal/config"
	"yardwords/internal/handler"
	"yardwords/internal/middleware"
	"yardwords/internal/quiz"
	"yardwords/internal/repository/postgres"
	"yardwords/internal/service"
	"yardwords/internal/tts"
	"yardwords/internal/vocabulary"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Yardwords Bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	userRepo := postgres.NewUserRepo(db)

	speaker, err := newSpeaker(cfg.TTS, logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech synthesis", zap.Error(err))
	}

	store := vocabulary.Default()
	logger.Info("Vocabulary loaded", zap.Int("entries", store.Len()))

	themeService := service.NewThemeService(userRepo)
	dictService := service.NewDictionaryService(store, speaker, cfg.TTS.Language)
	quizService := service.NewQuizService(store, quiz.NewGenerator(nil), logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.EnsureUser(themeService, logger))

	h := handler.NewHandler(bot, themeService, dictService, quizService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runCleanupJob(ctx, quizService, cfg.SessionTTL, logger)

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	logger.Info("Bot stopped gracefully")
}

const (
	dbConnectAttempts = 30
	dbRetryDelay      = 2 * time.Second
	migrationsSource  = "file://migrations"
)

// connectDatabase opens PostgreSQL, retrying while the server comes up
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				db.SetMaxOpenConns(10)
				db.SetMaxIdleConns(2)
				db.SetConnMaxLifetime(5 * time.Minute)
				return db, nil
			}
			db.Close()
		}

		lastErr = err
		logger.Warn("Database is not reachable yet",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(dbRetryDelay)
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", dbConnectAttempts, lastErr)
}

// runMigrations applies the users schema
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsSource, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("apply migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// newSpeaker returns the Google client, or a silent speaker when no key is configured
func newSpeaker(cfg config.TTSConfig, logger *zap.Logger) (tts.Speaker, error) {
	if cfg.APIKey == "" {
		logger.Warn(config.TTSKeyEnv + " is not set, pronunciation is disabled")
		return tts.Nop{}, nil
	}
	return tts.NewGoogleClient(cfg.APIKey, cfg.CacheDir, cfg.AudioDir, logger)
}

// runCleanupJob evicts quiz sessions idle for longer than ttl
func runCleanupJob(ctx context.Context, quizService *service.QuizService, ttl time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			if n := quizService.CleanupIdle(ttl); n > 0 {
				logger.Info("Evicted idle quiz sessions", zap.Int("count", n))
			}
		}
	}
}
