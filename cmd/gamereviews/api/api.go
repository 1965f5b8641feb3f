package api

import (
	"net/http"

	"github.com/tjper/gamereviews/cmd/gamereviews/logger"
	ihttp "github.com/tjper/gamereviews/internal/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const (
	// QueryPath is the path of the GraphQL endpoint.
	QueryPath = "/query"
	// HealthzPath is the path of the health check endpoint.
	HealthzPath = "/healthz"
)

// Option configures an API.
type Option func(*options)

type options struct {
	playground     bool
	allowedOrigins []string
}

// WithPlayground mounts the GraphQL playground at "/" when enabled.
func WithPlayground(enabled bool) Option {
	return func(o *options) { o.playground = enabled }
}

// WithAllowedOrigins sets the origins permitted to make cross-origin
// requests. When unset, every origin is permitted.
func WithAllowedOrigins(origins ...string) Option {
	return func(o *options) { o.allowedOrigins = origins }
}

// NewAPI creates an API serving schema over HTTP. health answers health
// checks.
func NewAPI(
	log *zap.Logger,
	schema graphql.ExecutableSchema,
	health http.Handler,
	opts ...Option,
) *API {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	api := API{
		Mux: chi.NewRouter(),
	}

	srv := handler.NewDefaultServer(schema)
	srv.Use(logger.NewTracer(log))

	api.Mux.Use(
		logger.Middleware(),
		middleware.RequestLogger(
			ihttp.NewZapLogFormatter(log, ihttp.WithContextFields(logger.ContextFields)),
		),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: o.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{logger.RequestIDHeader},
			MaxAge:         300,
		}),
	)

	api.Mux.Handle(QueryPath, srv)
	api.Mux.Method(http.MethodGet, HealthzPath, health)
	api.Mux.Method(http.MethodHead, HealthzPath, health)
	if o.playground {
		api.Mux.Handle("/", playground.Handler("GraphQL playground", QueryPath))
	}

	return &api
}

// API is the gamereviews HTTP API.
type API struct {
	Mux *chi.Mux
}
