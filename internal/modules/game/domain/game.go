package domain

import (
	"fmt"
	"time"
)

// CodeAlphabet is the symbol set join codes are drawn from.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of symbols in a join code.
const CodeLength = 4

type Status string

const (
	StatusWaitingForPlayer Status = "WAITING_FOR_PLAYER"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusCompleted        Status = "COMPLETED"
)

// Game is a single lobby/match instance. The empty string marks fields that
// are not set yet: Player2ID, CurrentTurnID and WinnerID stay empty until the
// corresponding transition assigns them.
type Game struct {
	ID            string    `db:"id"`
	Code          string    `db:"code"`
	Status        Status    `db:"status"`
	Player1ID     string    `db:"player_1_id"`
	Player2ID     string    `db:"player_2_id"`
	CurrentTurnID string    `db:"current_turn_id"`
	WinnerID      string    `db:"winner_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// Player is a player's identity record within a game. Records outlive the
// game relation so turn and winner ids stay resolvable after a game ends.
type Player struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	GameID string `db:"game_id"`
	Ready  bool   `db:"ready"`
}

// AttachPlayer admits the second player and starts the game. The creator
// always takes the first turn.
func (g *Game) AttachPlayer(playerID string) error {
	if g.Status != StatusWaitingForPlayer {
		return fmt.Errorf("%w: game %s is not available to join", ErrInvalidState, g.Code)
	}

	g.Player2ID = playerID
	g.Status = StatusInProgress
	g.CurrentTurnID = g.Player1ID
	return nil
}

// Resign completes an in-progress game, awarding the win to the occupant who
// stayed. A player id matching neither occupant is rejected before any field
// is touched.
func (g *Game) Resign(playerID string) error {
	if g.Status != StatusInProgress {
		return fmt.Errorf("%w: game %s is not in progress", ErrInvalidState, g.ID)
	}

	switch playerID {
	case g.Player1ID:
		g.WinnerID = g.Player2ID
	case g.Player2ID:
		g.WinnerID = g.Player1ID
	default:
		return fmt.Errorf("%w: player %s is not part of game %s", ErrInvalidState, playerID, g.ID)
	}

	g.Status = StatusCompleted
	g.CurrentTurnID = ""
	return nil
}
