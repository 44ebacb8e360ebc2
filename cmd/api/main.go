package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "quizarena/internal/adapters/http"
	"quizarena/internal/adapters/http/handlers"
	"quizarena/internal/adapters/persistence"
	"quizarena/internal/adapters/pubsub"
	"quizarena/internal/adapters/security"
	"quizarena/internal/adapters/websocket"
	"quizarena/internal/application/usecases"
	"quizarena/internal/infra/config"
	infraDB "quizarena/internal/infra/db"
	"quizarena/internal/infra/lock"
	"quizarena/internal/infra/logger"
	"quizarena/internal/infra/metrics"
	"quizarena/internal/ports"

	"github.com/prometheus/client_golang/prometheus"

	_ "quizarena/docs"
)

// @title QuizArena API
// @version 1.0
// @description Sessões de quiz ao vivo: o mestre do jogo conduz, os jogadores respondem e roubam perguntas.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @externalDocs.description Eventos em tempo real via WebSocket em /ws?token=...
func main() {
	if err := run(); err != nil {
		logger.Error("Encerrando com erro", "erro", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuração e Logger
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		return err
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Banco de Dados
	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("conectar ao banco: %w", err)
	}
	defer db.Close()

	if err := infraDB.RunMigrations(db); err != nil {
		return fmt.Errorf("migração: %w", err)
	}

	// 3a. Persistência
	userRepo := persistence.NewSQLiteUserRepository(db)
	quizRepo := persistence.NewSQLiteQuizRepository(db)
	questionRepo := persistence.NewSQLiteQuestionRepository(db)
	historyRepo := persistence.NewSQLiteHistoryRepository(db)

	var store ports.SessionStore
	switch cfg.SessionStore {
	case "memory":
		store = persistence.NewInMemorySessionStore()
	default:
		store = persistence.NewSQLiteSessionStore(db)
	}

	hasher := security.NewBcryptHasher()
	tokenService := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)

	// 3b. Tempo real: hub local e, com Redis, distribuição entre instâncias
	wsHub := websocket.NewHub()
	go wsHub.Run(ctx)

	var notifier ports.RealTimeHub = wsHub
	if cfg.Redis.URL != "" {
		redisClient, err := pubsub.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		notifier = pubsub.NewRedisBroadcaster(redisClient, cfg.Redis.ChannelPrefix)
		relay := pubsub.NewRelay(redisClient, cfg.Redis.ChannelPrefix, wsHub)
		go func() {
			if err := relay.Run(ctx); err != nil {
				logger.Error("Relay Redis parou", "erro", err)
			}
		}()
	}

	// 3c. Infra do fluxo
	m := metrics.New(prometheus.DefaultRegisterer)
	locker := lock.NewManager(cfg.Flow.LockShards)

	// 4. Application (Use Cases)
	authUC := usecases.NewAuthUseCases(userRepo, hasher, tokenService)
	quizUC := usecases.NewQuizUseCases(quizRepo)
	questionUC := usecases.NewQuestionUseCases(quizRepo, questionRepo)

	historyUC := usecases.NewHistoryUseCases(historyRepo, quizRepo, store, m)
	gameUC := usecases.NewGameUseCases(store, quizRepo, userRepo)
	flowUC := usecases.NewFlowUseCases(usecases.FlowDeps{
		Store:        store,
		UserRepo:     userRepo,
		Hub:          notifier,
		Archiver:     historyUC,
		Locker:       locker,
		Metrics:      m,
		SerializeAll: cfg.Flow.SerializeAllEvents,
	})

	// 5. Handlers e Router
	router := httpadapter.NewRouter(httpadapter.RouterDeps{
		Auth:           handlers.NewAuthHandler(authUC),
		Quiz:           handlers.NewQuizHandler(quizUC),
		Question:       handlers.NewQuestionHandler(questionUC),
		Game:           handlers.NewGameHandler(gameUC),
		Flow:           handlers.NewFlowHandler(flowUC),
		Report:         handlers.NewReportHandler(historyUC),
		WS:             websocket.NewWebSocketHandler(wsHub, store, tokenService),
		TokenService:   tokenService,
		Gatherer:       prometheus.DefaultGatherer,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// 6. Servidor
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Iniciando servidor",
			"porta", cfg.Port,
			"store", cfg.SessionStore,
			"serializar_todos", cfg.Flow.SerializeAllEvents,
			"redis", cfg.Redis.URL != "",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
