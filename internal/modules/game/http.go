package game

import (
	"errors"
	"net/http"

	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"
)

// Response is the client-facing representation of a game. Error is populated
// only on failure paths that still need a body.
type Response struct {
	GameID    string `json:"gameId,omitempty"`
	GameCode  string `json:"gameCode,omitempty"`
	Status    string `json:"status,omitempty"`
	Player1ID string `json:"player1Id,omitempty"`
	Player2ID string `json:"player2Id,omitempty"`
	Error     string `json:"error,omitempty"`
}

func ResponseFrom(game domain.Game) Response {
	return Response{
		GameID:    game.ID,
		GameCode:  game.Code,
		Status:    string(game.Status),
		Player1ID: game.Player1ID,
		Player2ID: game.Player2ID,
	}
}

// CommandErrorFrom maps domain errors onto transport status codes.
func CommandErrorFrom(err error) error {
	statusCode := 500

	switch {
	case errors.Is(err, domain.ErrNotFound):
		statusCode = 404
	case errors.Is(err, domain.ErrInvalidState):
		statusCode = 409
	}

	return core.NewCommandError(statusCode, err, core.WithReason(err.Error()))
}

// WriteError renders a failed operation with the status code carried by the
// command error and the message in the Response body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := 500
	message := err.Error()

	var commandErr core.CommandError
	if errors.As(err, &commandErr) {
		statusCode = commandErr.StatusCode
		if commandErr.Reason != nil {
			message = *commandErr.Reason
		}
	}

	core.WriteResponse(w, r, statusCode, Response{Error: message})
}
