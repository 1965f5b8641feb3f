package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphmodel "github.com/tjper/gamereviews/cmd/gamereviews/graph/model"
	"github.com/tjper/gamereviews/cmd/gamereviews/model"
	gerrors "github.com/tjper/gamereviews/internal/graph/errors"
	"github.com/tjper/gamereviews/internal/graph/executor"

	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSDL string

// ResolverRoot provides the resolvers of every object type with fields that
// are not plain record properties.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Game() GameResolver
	Review() ReviewResolver
	Author() AuthorResolver
}

// QueryResolver resolves the fields of the Query type.
type QueryResolver interface {
	Games(ctx context.Context) ([]*model.Game, error)
	Reviews(ctx context.Context) ([]*model.Review, error)
	Authors(ctx context.Context) ([]*model.Author, error)
	Review(ctx context.Context, id *string) (*model.Review, error)
	ReviewByRating(ctx context.Context, rating *int) ([]*model.Review, error)
	Game(ctx context.Context, id *string) (*model.Game, error)
	Author(ctx context.Context, id *string) (*model.Author, error)
}

// MutationResolver resolves the fields of the Mutation type.
type MutationResolver interface {
	DeleteGame(ctx context.Context, id *string) ([]*model.Game, error)
	AddGame(ctx context.Context, game *graphmodel.GameInput) (*model.Game, error)
	UpdateGame(ctx context.Context, id *string, edits *graphmodel.EditGameInput) (*model.Game, error)
}

// GameResolver resolves the Game fields that are not plain properties.
type GameResolver interface {
	Reviews(ctx context.Context, obj *model.Game) ([]*model.Review, error)
}

// ReviewResolver resolves the Review fields that are not plain properties.
type ReviewResolver interface {
	Game(ctx context.Context, obj *model.Review) (*model.Game, error)
	Author(ctx context.Context, obj *model.Review) (*model.Author, error)
}

// AuthorResolver resolves the Author fields that are not plain properties.
type AuthorResolver interface {
	Reviews(ctx context.Context, obj *model.Author) ([]*model.Review, error)
}

// LoadSchema parses the gamereviews schema.
func LoadSchema() (*ast.Schema, error) {
	return executor.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
}

// NewExecutableSchema creates the executable gamereviews schema served by
// root. An error is returned if root's bindings do not match the schema.
func NewExecutableSchema(root ResolverRoot) (*executor.Executor, error) {
	schema, err := LoadSchema()
	if err != nil {
		return nil, err
	}
	return executor.New(schema, NewBindings(root))
}

// NewBindings binds every field of the gamereviews schema to root or to the
// record property it exposes.
func NewBindings(root ResolverRoot) executor.Bindings {
	var (
		query    = root.Query()
		mutation = root.Mutation()
		game     = root.Game()
		review   = root.Review()
		author   = root.Author()
	)

	return make(executor.Bindings).
		Bind("Query", "games", func(ctx context.Context, _ interface{}, _ map[string]interface{}) (interface{}, error) {
			return query.Games(ctx)
		}).
		Bind("Query", "reviews", func(ctx context.Context, _ interface{}, _ map[string]interface{}) (interface{}, error) {
			return query.Reviews(ctx)
		}).
		Bind("Query", "authors", func(ctx context.Context, _ interface{}, _ map[string]interface{}) (interface{}, error) {
			return query.Authors(ctx)
		}).
		Bind("Query", "review", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			id, err := argID(args, "id")
			if err != nil {
				return nil, err
			}
			return query.Review(ctx, id)
		}).
		Bind("Query", "reviewByRating", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			rating, err := graphmodel.UnmarshalOptionalInt(args["rating"])
			if err != nil {
				return nil, badArgument("rating", err)
			}
			return query.ReviewByRating(ctx, rating)
		}).
		Bind("Query", "game", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			id, err := argID(args, "id")
			if err != nil {
				return nil, err
			}
			return query.Game(ctx, id)
		}).
		Bind("Query", "author", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			id, err := argID(args, "id")
			if err != nil {
				return nil, err
			}
			return query.Author(ctx, id)
		}).
		Bind("Mutation", "deleteGame", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			id, err := argID(args, "id")
			if err != nil {
				return nil, err
			}
			return mutation.DeleteGame(ctx, id)
		}).
		Bind("Mutation", "addGame", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			input, err := graphmodel.UnmarshalGameInput(args["game"])
			if err != nil {
				return nil, badArgument("game", err)
			}
			return mutation.AddGame(ctx, input)
		}).
		Bind("Mutation", "updateGame", func(ctx context.Context, _ interface{}, args map[string]interface{}) (interface{}, error) {
			id, err := argID(args, "id")
			if err != nil {
				return nil, err
			}
			edits, err := graphmodel.UnmarshalEditGameInput(args["edits"])
			if err != nil {
				return nil, badArgument("edits", err)
			}
			return mutation.UpdateGame(ctx, id, edits)
		}).
		Bind("Game", "id", gameProperty(func(g *model.Game) interface{} { return g.ID })).
		Bind("Game", "title", gameProperty(func(g *model.Game) interface{} { return g.Title })).
		Bind("Game", "platform", gameProperty(func(g *model.Game) interface{} { return g.Platform })).
		Bind("Game", "reviews", func(ctx context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
			return game.Reviews(ctx, obj.(*model.Game))
		}).
		Bind("Review", "id", reviewProperty(func(r *model.Review) interface{} { return r.ID })).
		Bind("Review", "rating", reviewProperty(func(r *model.Review) interface{} { return r.Rating })).
		Bind("Review", "content", reviewProperty(func(r *model.Review) interface{} { return r.Content })).
		Bind("Review", "game", func(ctx context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
			return review.Game(ctx, obj.(*model.Review))
		}).
		Bind("Review", "author", func(ctx context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
			return review.Author(ctx, obj.(*model.Review))
		}).
		Bind("Author", "id", authorProperty(func(a *model.Author) interface{} { return a.ID })).
		Bind("Author", "name", authorProperty(func(a *model.Author) interface{} { return a.Name })).
		Bind("Author", "verified", authorProperty(func(a *model.Author) interface{} { return a.Verified })).
		Bind("Author", "reviews", func(ctx context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
			return author.Reviews(ctx, obj.(*model.Author))
		})
}

func gameProperty(fn func(*model.Game) interface{}) executor.Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*model.Game)), nil
	}
}

func reviewProperty(fn func(*model.Review) interface{}) executor.Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*model.Review)), nil
	}
}

func authorProperty(fn func(*model.Author) interface{}) executor.Resolver {
	return func(_ context.Context, obj interface{}, _ map[string]interface{}) (interface{}, error) {
		return fn(obj.(*model.Author)), nil
	}
}

func argID(args map[string]interface{}, name string) (*string, error) {
	id, err := graphmodel.UnmarshalOptionalID(args[name])
	if err != nil {
		return nil, badArgument(name, err)
	}
	return id, nil
}

func badArgument(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", gerrors.ErrBadArgument, name, err)
}
