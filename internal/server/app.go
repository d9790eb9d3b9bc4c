// Package server wires storage, services and both listeners together and
// runs them until the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/dmitrijs2005/wordsearch/internal/server/auth"
	"github.com/dmitrijs2005/wordsearch/internal/server/config"
	"github.com/dmitrijs2005/wordsearch/internal/server/httpapi"
	"github.com/dmitrijs2005/wordsearch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wordsearch/internal/server/services"

	gs "github.com/dmitrijs2005/wordsearch/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		db.Close()
		return nil, err
	}

	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, m repomanager.RepositoryManager) (*App, error) {

	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	tokens := auth.NewTokenService(auth.TokenConfig{
		SecretKey:  []byte(c.SecretKey),
		DefaultTTL: c.AccessTokenValidityDuration,
	})

	as := services.NewAccountService(db, m, tokens, c.AccessTokenValidityDuration)
	ans := services.NewAnswerService(db, m)
	guard := services.NewGuard(db, m, tokens)

	if c.SeedFile != "" {
		keys, err := services.LoadSeedFile(c.SeedFile)
		if err != nil {
			return nil, err
		}
		n, err := ans.Seed(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("seed answer keys: %w", err)
		}
		logger.Info(ctx, "Answer keys seeded", "file", c.SeedFile, "inserted", n)
	}

	handler := httpapi.NewRouter(httpapi.RouterDeps{
		Accounts: as,
		Answers:  ans,
		Guard:    guard,
		Logger:   logger,
	})

	return &App{config: c, logger: logger, db: db, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handler, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, parent is cancelled, or
// one of the listeners fails. The database is closed on return.
func (app *App) Run(parent context.Context) {

	ctx, cancelFunc := context.WithCancel(parent)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
