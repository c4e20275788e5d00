package server

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"strconv"

	"github.com/eskrenkovic/battleship-go/internal/config"
	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/commands"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/queries"
	gamestore "github.com/eskrenkovic/battleship-go/internal/modules/game/store"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		return nil, err
	}

	store := gamestore.NewPostgres(db)
	manager := domain.NewManager(store, config.Logger)

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	createGameHandler := commands.NewCreateGameCommandHandler(manager)
	err = mediator.RegisterRequestHandler[commands.CreateGameCommand, domain.Game](
		createGameHandler,
	)
	if err != nil {
		return nil, err
	}

	joinGameHandler := commands.NewJoinGameCommandHandler(manager)
	err = mediator.RegisterRequestHandler[commands.JoinGameCommand, domain.Game](
		joinGameHandler,
	)
	if err != nil {
		return nil, err
	}

	leaveGameHandler := commands.NewLeaveGameCommandHandler(manager)
	err = mediator.RegisterRequestHandler[commands.LeaveGameCommand, domain.Game](
		leaveGameHandler,
	)
	if err != nil {
		return nil, err
	}

	getGameHandler := queries.NewGetGameQueryHandler(manager)
	err = mediator.RegisterRequestHandler[queries.GetGameQuery, domain.Game](
		getGameHandler,
	)
	if err != nil {
		return nil, err
	}

	getAvailableGamesHandler := queries.NewGetAvailableGamesQueryHandler(manager)
	err = mediator.RegisterRequestHandler[queries.GetAvailableGamesQuery, []domain.Game](
		getAvailableGamesHandler,
	)
	if err != nil {
		return nil, err
	}

	getAllGamesHandler := queries.NewGetAllGamesQueryHandler(manager)
	err = mediator.RegisterRequestHandler[queries.GetAllGamesQuery, []domain.Game](
		getAllGamesHandler,
	)
	if err != nil {
		return nil, err
	}

	// http

	r := chi.NewRouter()
	r.Use(baseContextMiddleware(baseCtx))
	r.Use(core.CorrelationIDMiddleware)

	// The {id} segment is the public join code for get/join and the internal
	// game id for leave, mirroring how clients address games.
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", commands.HandleCreateGame)
		r.Get("/", queries.HandleGetAllGames)
		r.Get("/available", queries.HandleGetAvailableGames)
		r.Get("/{id}", queries.HandleGetGame)
		r.Post("/{id}/join", commands.HandleJoinGame)
		r.Post("/{id}/leave", commands.HandleLeaveGame)
	})

	server := http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
	}

	return &HTTPServer{server: &server}, nil
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}

func baseContextMiddleware(baseCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			baseCtx := baseCtx

			if v, ok := ctx.Value(http.ServerContextKey).(*http.Server); ok {
				baseCtx = context.WithValue(baseCtx, http.ServerContextKey, v)
			}

			if v, ok := ctx.Value(http.LocalAddrContextKey).(net.Addr); ok {
				baseCtx = context.WithValue(baseCtx, http.LocalAddrContextKey, v)
			}

			next.ServeHTTP(w, r.WithContext(baseCtx))
		})
	}
}
