package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound signals a lookup miss by id or code.
	ErrNotFound = errors.New("game not found")

	// ErrInvalidState signals an operation that is not legal in the game's
	// current status.
	ErrInvalidState = errors.New("invalid game state")

	// ErrCodeConflict is returned by Store.Save when the game's code is
	// already held by a different game.
	ErrCodeConflict = errors.New("game code already in use")

	// ErrStorage wraps collaborator failures. They surface unchanged and are
	// never retried here.
	ErrStorage = errors.New("storage failure")
)

// Store is the persistence boundary for games and players. Implementations
// make every individual call atomic and enforce code uniqueness on Save;
// sequencing across calls is the Manager's responsibility.
type Store interface {
	Save(ctx context.Context, game Game) (Game, error)
	FindByID(ctx context.Context, id string) (Game, error)
	FindByCode(ctx context.Context, code string) (Game, error)
	ListAll(ctx context.Context) ([]Game, error)
	Delete(ctx context.Context, game Game) error
	SavePlayer(ctx context.Context, player Player) (Player, error)
}
