// Package server wires configuration, storage, the identity core and the
// gRPC transport into a runnable forum server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/tierforum/internal/logging"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/config"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tierforum/internal/server/services"

	gs "github.com/dmitrijs2005/tierforum/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	questionService *services.QuestionService
	answerService   *services.AnswerService
}

// NewApp validates c, connects to the database, applies migrations and
// builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens, err := auth.NewTokenService([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("token service error: %w", err)
	}

	g := gate.New(tokens, services.NewOwnerResolver(db, rm), logger)
	hasher := auth.NewPasswordHasher(c.BcryptCost)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		userService:     services.NewUserService(db, rm, hasher, tokens, g, logger),
		questionService: services.NewQuestionService(db, rm, g, logger),
		answerService:   services.NewAnswerService(db, rm, g, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.questionService, app.answerService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or the server fails, then
// closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
