package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/farabi1038/lang-portal/internal/config"
	"github.com/farabi1038/lang-portal/internal/domain/mastery"
	"github.com/farabi1038/lang-portal/internal/platform/postgres"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
	"github.com/farabi1038/lang-portal/internal/service/study"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
	"github.com/farabi1038/lang-portal/internal/store"
)

// application holds the wired dependency graph of the portal.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	wordStore     store.WordStore
	groupStore    store.GroupStore
	activityStore store.StudyActivityStore
	sessionStore  store.SessionStore
	recordStore   store.StudyRecordStore

	sessionService   study.SessionService
	vocabService     vocab.Service
	dashboardService dashboard.Service
}

// newApplication opens the database and wires stores and services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.wordStore = postgres.NewPostgresWordStore(db, logger)
	app.groupStore = postgres.NewPostgresGroupStore(db, logger)
	app.activityStore = postgres.NewPostgresStudyActivityStore(db, logger)
	app.sessionStore = postgres.NewPostgresSessionStore(db, logger)
	app.recordStore = postgres.NewPostgresStudyRecordStore(db, logger)

	app.sessionService = study.NewSessionService(
		db,
		app.wordStore,
		app.groupStore,
		app.activityStore,
		app.sessionStore,
		app.recordStore,
		logger,
	)
	app.vocabService = vocab.NewService(app.wordStore, app.groupStore, app.activityStore, logger)

	var params *mastery.Params
	if cfg.Study.MasteryMinExposures > 0 {
		params = mastery.NewParams(mastery.ParamsConfig{MinExposures: cfg.Study.MasteryMinExposures})
	}
	app.dashboardService = dashboard.NewService(
		app.wordStore,
		app.groupStore,
		app.activityStore,
		app.sessionStore,
		app.recordStore,
		params,
		logger,
	)

	return app, nil
}

func (app *application) close() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}

// openDatabase opens a pgx-backed pool and verifies connectivity.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}
