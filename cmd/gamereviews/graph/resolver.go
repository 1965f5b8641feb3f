package graph

import (
	"context"

	"github.com/tjper/gamereviews/cmd/gamereviews/logger"
	"github.com/tjper/gamereviews/cmd/gamereviews/model"

	"go.uber.org/zap"
)

// IStore represents the API by which the resolver reads and mutates games,
// reviews, and authors.
type IStore interface {
	Games(context.Context) ([]*model.Game, error)
	Reviews(context.Context) ([]*model.Review, error)
	Authors(context.Context) ([]*model.Author, error)

	Game(context.Context, string) (*model.Game, error)
	Review(context.Context, string) (*model.Review, error)
	Author(context.Context, string) (*model.Author, error)

	ReviewsByRating(context.Context, int) ([]*model.Review, error)
	ReviewsByGame(context.Context, string) ([]*model.Review, error)
	ReviewsByAuthor(context.Context, string) ([]*model.Review, error)

	AddGame(context.Context, model.Game) (*model.Game, error)
	DeleteGame(context.Context, string) ([]*model.Game, error)
	UpdateGame(context.Context, string, model.GameEdits) (*model.Game, error)
}

// NewResolver creates a new Resolver object.
func NewResolver(
	logger *zap.Logger,
	store IStore,
) *Resolver {
	return &Resolver{
		logger: logger,
		store:  store,
	}
}

// Resolver resolves graphql queries and mutations.
type Resolver struct {
	logger *zap.Logger
	store  IStore
}

func (r Resolver) log(ctx context.Context) *zap.Logger {
	return r.logger.With(logger.ContextFields(ctx)...)
}
