package graph

import (
	"context"
	"errors"

	"github.com/tjper/gamereviews/cmd/gamereviews/db"
	"github.com/tjper/gamereviews/cmd/gamereviews/model"
	gerrors "github.com/tjper/gamereviews/internal/graph/errors"

	"go.uber.org/zap"
)

// --- helpers ---

// game retrieves the Game with the passed id, or nil if it does not exist.
func (r *Resolver) game(ctx context.Context, id string) (*model.Game, error) {
	game, err := r.store.Game(ctx, id)
	if errors.Is(err, db.ErrGameDNE) {
		return nil, nil
	}
	if err != nil {
		r.log(ctx).Error("error retrieving game", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return game, nil
}

// review retrieves the Review with the passed id, or nil if it does not exist.
func (r *Resolver) review(ctx context.Context, id string) (*model.Review, error) {
	review, err := r.store.Review(ctx, id)
	if errors.Is(err, db.ErrReviewDNE) {
		return nil, nil
	}
	if err != nil {
		r.log(ctx).Error("error retrieving review", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return review, nil
}

// author retrieves the Author with the passed id, or nil if it does not exist.
func (r *Resolver) author(ctx context.Context, id string) (*model.Author, error) {
	author, err := r.store.Author(ctx, id)
	if errors.Is(err, db.ErrAuthorDNE) {
		return nil, nil
	}
	if err != nil {
		r.log(ctx).Error("error retrieving author", zap.Error(err))
		return nil, gerrors.ErrInternalServer
	}
	return author, nil
}

// toPlatform converts a platform argument to a Game's platform, dropping null
// items.
func toPlatform(platform []*string) []string {
	res := make([]string, 0, len(platform))
	for _, p := range platform {
		if p == nil {
			continue
		}
		res = append(res, *p)
	}
	return res
}
