package commands

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
)

// LeaveGameCommand targets a game by its internal id, not the public code -
// leaving is something only a participant who already holds the id does.
type LeaveGameCommand struct {
	GameID   string `json:"-"`
	PlayerID string `json:"playerId"`
}

func (c LeaveGameCommand) Validate() error {
	if c.GameID == "" {
		return fmt.Errorf("invalid GameID - '%s'", c.GameID)
	}

	if c.PlayerID == "" {
		return fmt.Errorf("invalid PlayerID - '%s'", c.PlayerID)
	}

	return nil
}

func HandleLeaveGame(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[LeaveGameCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.GameID = chi.URLParam(r, "id")

	left, err := mediator.Send[LeaveGameCommand, domain.Game](r.Context(), command)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	core.WriteOK(w, r, game.ResponseFrom(left))
}

type LeaveGameCommandHandler struct {
	manager *domain.Manager
}

func NewLeaveGameCommandHandler(manager *domain.Manager) *LeaveGameCommandHandler {
	return &LeaveGameCommandHandler{manager}
}

func (h *LeaveGameCommandHandler) Handle(
	ctx context.Context,
	request LeaveGameCommand,
) (domain.Game, error) {
	left, err := h.manager.LeaveGame(ctx, request.GameID, request.PlayerID)
	if err != nil {
		return domain.Game{}, game.CommandErrorFrom(err)
	}

	return left, nil
}
