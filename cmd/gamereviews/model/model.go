// Package model contains the records served by the gamereviews API.
package model

// Game is a video game that may be reviewed.
type Game struct {
	ID       string   `json:"id" yaml:"id" validate:"required,id"`
	Title    string   `json:"title" yaml:"title"`
	Platform []string `json:"platform" yaml:"platform"`
}

// Clone creates a deep copy of the Game.
func (g Game) Clone() Game {
	cloned := g
	cloned.Platform = make([]string, len(g.Platform))
	copy(cloned.Platform, g.Platform)
	return cloned
}

// Review is an Author's rating of a Game. GameID and AuthorID are not
// guaranteed to reference existing records.
type Review struct {
	ID       string `json:"id" yaml:"id" validate:"required,id"`
	Rating   int    `json:"rating" yaml:"rating"`
	Content  string `json:"content" yaml:"content"`
	GameID   string `json:"game_id" yaml:"game_id" validate:"required,id"`
	AuthorID string `json:"author_id" yaml:"author_id" validate:"required,id"`
}

// Author writes Reviews.
type Author struct {
	ID       string `json:"id" yaml:"id" validate:"required,id"`
	Name     string `json:"name" yaml:"name"`
	Verified bool   `json:"verified" yaml:"verified"`
}

// GameEdits describes changes to apply to an existing Game. A nil field is
// left unchanged; a non-nil field replaces the existing value, even if empty.
type GameEdits struct {
	Title    *string
	Platform *[]string
}
