package graph

import (
	"context"
	"errors"

	"github.com/tjper/gamereviews/cmd/gamereviews/db"
	graphmodel "github.com/tjper/gamereviews/cmd/gamereviews/graph/model"
	"github.com/tjper/gamereviews/cmd/gamereviews/model"
	gerrors "github.com/tjper/gamereviews/internal/graph/errors"

	"go.uber.org/zap"
)

func (r *mutationResolver) DeleteGame(ctx context.Context, id *string) ([]*model.Game, error) {
	if id == nil {
		return r.Query().Games(ctx)
	}

	games, err := r.store.DeleteGame(ctx, *id)
	if err != nil {
		r.log(ctx).Error("error deleting game", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return games, nil
}

func (r *mutationResolver) AddGame(ctx context.Context, input *graphmodel.GameInput) (*model.Game, error) {
	var game model.Game
	if input != nil {
		if input.Title != nil {
			game.Title = *input.Title
		}
		game.Platform = toPlatform(input.Platform)
	}

	added, err := r.store.AddGame(ctx, game)
	if err != nil {
		r.log(ctx).Error("error adding game", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	r.log(ctx).Info("game added", zap.String("game-id", added.ID))
	return added, nil
}

func (r *mutationResolver) UpdateGame(ctx context.Context, id *string, input *graphmodel.EditGameInput) (*model.Game, error) {
	if id == nil {
		return nil, nil
	}

	var edits model.GameEdits
	if input != nil {
		edits.Title = input.Title
		if input.Platform != nil {
			platform := toPlatform(input.Platform)
			edits.Platform = &platform
		}
	}

	game, err := r.store.UpdateGame(ctx, *id, edits)
	if errors.Is(err, db.ErrGameDNE) {
		return nil, nil
	}
	if err != nil {
		r.log(ctx).Error("error updating game", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return game, nil
}

func (r *queryResolver) Games(ctx context.Context) ([]*model.Game, error) {
	games, err := r.store.Games(ctx)
	if err != nil {
		r.log(ctx).Error("error retrieving games", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return games, nil
}

func (r *queryResolver) Reviews(ctx context.Context) ([]*model.Review, error) {
	reviews, err := r.store.Reviews(ctx)
	if err != nil {
		r.log(ctx).Error("error retrieving reviews", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return reviews, nil
}

func (r *queryResolver) Authors(ctx context.Context) ([]*model.Author, error) {
	authors, err := r.store.Authors(ctx)
	if err != nil {
		r.log(ctx).Error("error retrieving authors", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return authors, nil
}

func (r *queryResolver) Review(ctx context.Context, id *string) (*model.Review, error) {
	if id == nil {
		return nil, nil
	}
	return r.review(ctx, *id)
}

func (r *queryResolver) ReviewByRating(ctx context.Context, rating *int) ([]*model.Review, error) {
	if rating == nil {
		return []*model.Review{}, nil
	}

	reviews, err := r.store.ReviewsByRating(ctx, *rating)
	if err != nil {
		r.log(ctx).Error("error retrieving reviews by rating", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return reviews, nil
}

func (r *queryResolver) Game(ctx context.Context, id *string) (*model.Game, error) {
	if id == nil {
		return nil, nil
	}
	return r.game(ctx, *id)
}

func (r *queryResolver) Author(ctx context.Context, id *string) (*model.Author, error) {
	if id == nil {
		return nil, nil
	}
	return r.author(ctx, *id)
}

func (r *gameResolver) Reviews(ctx context.Context, obj *model.Game) ([]*model.Review, error) {
	reviews, err := r.store.ReviewsByGame(ctx, obj.ID)
	if err != nil {
		r.log(ctx).Error("error retrieving game reviews", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return reviews, nil
}

func (r *reviewResolver) Game(ctx context.Context, obj *model.Review) (*model.Game, error) {
	return r.game(ctx, obj.GameID)
}

func (r *reviewResolver) Author(ctx context.Context, obj *model.Review) (*model.Author, error) {
	return r.author(ctx, obj.AuthorID)
}

func (r *authorResolver) Reviews(ctx context.Context, obj *model.Author) ([]*model.Review, error) {
	reviews, err := r.store.ReviewsByAuthor(ctx, obj.ID)
	if err != nil {
		r.log(ctx).Error("error retrieving author reviews", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return reviews, nil
}

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Game returns GameResolver implementation.
func (r *Resolver) Game() GameResolver { return &gameResolver{r} }

// Review returns ReviewResolver implementation.
func (r *Resolver) Review() ReviewResolver { return &reviewResolver{r} }

// Author returns AuthorResolver implementation.
func (r *Resolver) Author() AuthorResolver { return &authorResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type gameResolver struct{ *Resolver }
type reviewResolver struct{ *Resolver }
type authorResolver struct{ *Resolver }
