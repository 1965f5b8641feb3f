package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"github.com/tjper/gamereviews/cmd/gamereviews/api"
	"github.com/tjper/gamereviews/cmd/gamereviews/config"
	"github.com/tjper/gamereviews/cmd/gamereviews/db"
	"github.com/tjper/gamereviews/cmd/gamereviews/graph"
	ictx "github.com/tjper/gamereviews/context"
	"github.com/tjper/gamereviews/internal/healthz"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

func main() {
	os.Exit(run())
}

const (
	ecExit = iota
	_
	ecFixtures
	ecSchema
	ecListen
	ecServerAPI
)

func run() int {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("[Startup] Loading fixtures ...")
	fixtures, err := db.LoadFixtures(config.Fixtures())
	if err != nil {
		logger.Error("[Startup] Failed to load fixtures.", zap.Error(err))
		return ecFixtures
	}
	logger.Info(
		"[Startup] Loaded fixtures.",
		zap.Int("games", len(fixtures.Games)),
		zap.Int("reviews", len(fixtures.Reviews)),
		zap.Int("authors", len(fixtures.Authors)),
	)

	logger.Info("[Startup] Creating store ...")
	store := db.NewStore(logger, *fixtures)
	logger.Info("[Startup] Created store.")

	logger.Info("[Startup] Creating executable schema ...")
	schema, err := graph.NewExecutableSchema(graph.NewResolver(logger, store))
	if err != nil {
		logger.Error("[Startup] Failed to create executable schema.", zap.Error(err))
		return ecSchema
	}
	logger.Info("[Startup] Created executable schema.")

	logger.Info("[Startup] Creating API ...")
	health := healthz.NewHTTP()
	gamereviews := api.NewAPI(
		logger,
		schema,
		health,
		api.WithPlayground(config.PlaygroundEnabled()),
		api.WithAllowedOrigins(config.AllowedOrigins()...),
	)
	logger.Info("[Startup] Created API.")

	logger.Info("[Startup] Launching server ...")
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", config.Port()))
	if err != nil {
		logger.Error("[Startup] Failed to listen.", zap.Error(err))
		return ecListen
	}
	srv := &http.Server{
		Handler:      gamereviews.Mux,
		ReadTimeout:  config.HTTPReadTimeout(),
		WriteTimeout: config.HTTPWriteTimeout(),
	}

	ctx, cancel := ictx.WithSignal(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		health.Sick()

		if sig, ok := ictx.Signal(ctx); ok {
			logger.Info("[Shutdown] Received signal.", zap.Stringer("signal", sig))
		}
		logger.Info("[Shutdown] Shutting down server ...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	health.Healthy()
	logger.Sugar().Infof("[Startup] gamereviews API ready at http://%s%s", ln.Addr(), api.QueryPath)

	if err := g.Wait(); err != nil {
		logger.Error("[Shutdown] Server API failed.", zap.Error(err))
		return ecServerAPI
	}
	logger.Info("[Shutdown] Server stopped.")
	return ecExit
}
