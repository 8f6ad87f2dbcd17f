package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Routes carries the handlers and dependencies mounted by the router.
// Redis and QuizWS may be nil.
type Routes struct {
	Trivia *trivia.HTTPHandler
	QuizWS http.HandlerFunc
	Store  Pinger
	Redis  *redis.Client
}

// NewHTTPServer wires the API routes and middleware into an http.Server.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, routes Routes) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg.CORS, logger, routes),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the full handler chain. Exposed for tests.
func NewRouter(cors config.CORS, logger zerolog.Logger, routes Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := pingDependencies(ctx, routes.Store, routes.Redis); err != nil {
			logger := logging.FromContext(ctx)
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if routes.Trivia != nil {
		routes.Trivia.Register(mux)
	}

	if routes.QuizWS != nil {
		mux.HandleFunc("/ws/quizzes", routes.QuizWS)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var h http.Handler = mux
	h = withCORS(cors, h)
	h = withRecovery(h)
	h = withInstrumentation(logger, h)
	h = withRequestID(h)
	return h
}

func pingDependencies(ctx context.Context, store Pinger, redis *redis.Client) error {
	if store != nil {
		if err := store.Ping(ctx); err != nil {
			return err
		}
	}
	if redis != nil {
		if err := redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
