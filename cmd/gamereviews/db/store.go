// Package db provides the in-memory datastore backing the gamereviews API.
package db

import (
	"context"
	"errors"
	"sync"

	"github.com/tjper/gamereviews/cmd/gamereviews/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrGameDNE indicates the requested Game does not exist.
	ErrGameDNE = errors.New("game does not exist")
	// ErrReviewDNE indicates the requested Review does not exist.
	ErrReviewDNE = errors.New("review does not exist")
	// ErrAuthorDNE indicates the requested Author does not exist.
	ErrAuthorDNE = errors.New("author does not exist")
)

// IDGenerator produces identifiers for newly created records.
type IDGenerator func() string

// UUIDGenerator is the default IDGenerator.
func UUIDGenerator() string {
	return uuid.New().String()
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the IDGenerator used by Store.AddGame.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates a Store seeded with the passed Fixtures. The fixtures are
// copied; later changes to them do not affect the Store.
func NewStore(
	logger *zap.Logger,
	fixtures Fixtures,
	opts ...Option,
) *Store {
	s := &Store{
		logger:  logger,
		games:   make([]model.Game, 0, len(fixtures.Games)),
		reviews: make([]model.Review, 0, len(fixtures.Reviews)),
		authors: make([]model.Author, 0, len(fixtures.Authors)),
		newID:   UUIDGenerator,
	}
	for _, game := range fixtures.Games {
		s.games = append(s.games, game.Clone())
	}
	s.reviews = append(s.reviews, fixtures.Reviews...)
	s.authors = append(s.authors, fixtures.Authors...)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store holds games, reviews, and authors in insertion order. Every method is
// atomic with respect to the others. Returned records are copies.
type Store struct {
	logger *zap.Logger
	newID  IDGenerator

	mutex   sync.RWMutex
	games   []model.Game
	reviews []model.Review
	authors []model.Author
}

// Games retrieves every Game.
func (s *Store) Games(_ context.Context) ([]*model.Game, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.gamesCopy(), nil
}

// Reviews retrieves every Review.
func (s *Store) Reviews(_ context.Context) ([]*model.Review, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterReviews(func(model.Review) bool { return true }), nil
}

// Authors retrieves every Author.
func (s *Store) Authors(_ context.Context) ([]*model.Author, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	authors := make([]*model.Author, 0, len(s.authors))
	for i := range s.authors {
		author := s.authors[i]
		authors = append(authors, &author)
	}
	return authors, nil
}

// Game retrieves the first Game with the passed id. If no such Game exists,
// ErrGameDNE is returned.
func (s *Store) Game(_ context.Context, id string) (*model.Game, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.gameIndex(id)
	if i == -1 {
		return nil, ErrGameDNE
	}
	game := s.games[i].Clone()
	return &game, nil
}

// Review retrieves the first Review with the passed id. If no such Review
// exists, ErrReviewDNE is returned.
func (s *Store) Review(_ context.Context, id string) (*model.Review, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, review := range s.reviews {
		if review.ID == id {
			return &review, nil
		}
	}
	return nil, ErrReviewDNE
}

// Author retrieves the first Author with the passed id. If no such Author
// exists, ErrAuthorDNE is returned.
func (s *Store) Author(_ context.Context, id string) (*model.Author, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, author := range s.authors {
		if author.ID == id {
			return &author, nil
		}
	}
	return nil, ErrAuthorDNE
}

// ReviewsByRating retrieves the Reviews with the passed rating in their
// original order.
func (s *Store) ReviewsByRating(_ context.Context, rating int) ([]*model.Review, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterReviews(func(r model.Review) bool { return r.Rating == rating }), nil
}

// ReviewsByGame retrieves the Reviews referencing the passed Game id.
func (s *Store) ReviewsByGame(_ context.Context, gameID string) ([]*model.Review, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterReviews(func(r model.Review) bool { return r.GameID == gameID }), nil
}

// ReviewsByAuthor retrieves the Reviews referencing the passed Author id.
func (s *Store) ReviewsByAuthor(_ context.Context, authorID string) ([]*model.Review, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.filterReviews(func(r model.Review) bool { return r.AuthorID == authorID }), nil
}

// AddGame appends a new Game with a generated id, and the title and platform
// of the passed Game. The passed Game's ID is ignored.
func (s *Store) AddGame(_ context.Context, game model.Game) (*model.Game, error) {
	added := game.Clone()
	added.ID = s.newID()

	s.mutex.Lock()
	s.games = append(s.games, added)
	s.mutex.Unlock()

	s.logger.Debug("added game", zap.String("game-id", added.ID))
	added = added.Clone()
	return &added, nil
}

// DeleteGame removes the first Game with the passed id and returns the
// remaining Games. If no such Game exists the Games are returned unchanged.
func (s *Store) DeleteGame(_ context.Context, id string) ([]*model.Game, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.gameIndex(id)
	if i == -1 {
		return s.gamesCopy(), nil
	}
	s.games = append(s.games[:i], s.games[i+1:]...)

	s.logger.Debug("deleted game", zap.String("game-id", id))
	return s.gamesCopy(), nil
}

// UpdateGame applies the passed edits to the first Game with the passed id.
// If no such Game exists, ErrGameDNE is returned.
func (s *Store) UpdateGame(_ context.Context, id string, edits model.GameEdits) (*model.Game, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.gameIndex(id)
	if i == -1 {
		return nil, ErrGameDNE
	}

	updated := s.games[i].Clone()
	if edits.Title != nil {
		updated.Title = *edits.Title
	}
	if edits.Platform != nil {
		updated.Platform = append(make([]string, 0, len(*edits.Platform)), *edits.Platform...)
	}
	s.games[i] = updated

	s.logger.Debug("updated game", zap.String("game-id", id))
	updated = updated.Clone()
	return &updated, nil
}

// --- helpers ---

// gameIndex must be called while holding s.mutex.
func (s *Store) gameIndex(id string) int {
	for i := range s.games {
		if s.games[i].ID == id {
			return i
		}
	}
	return -1
}

// gamesCopy must be called while holding s.mutex.
func (s *Store) gamesCopy() []*model.Game {
	games := make([]*model.Game, 0, len(s.games))
	for i := range s.games {
		game := s.games[i].Clone()
		games = append(games, &game)
	}
	return games
}

// filterReviews must be called while holding s.mutex.
func (s *Store) filterReviews(keep func(model.Review) bool) []*model.Review {
	reviews := make([]*model.Review, 0)
	for i := range s.reviews {
		if !keep(s.reviews[i]) {
			continue
		}
		review := s.reviews[i]
		reviews = append(reviews, &review)
	}
	return reviews
}
