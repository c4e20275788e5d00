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

type JoinGameCommand struct {
	Code       string `json:"-"`
	PlayerName string `json:"playerName"`
}

func (c JoinGameCommand) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("invalid Code - '%s'", c.Code)
	}

	if c.PlayerName == "" {
		return fmt.Errorf("invalid PlayerName - '%s'", c.PlayerName)
	}

	return nil
}

func HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[JoinGameCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}
	command.Code = chi.URLParam(r, "id")

	joined, err := mediator.Send[JoinGameCommand, domain.Game](r.Context(), command)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	core.WriteOK(w, r, game.ResponseFrom(joined))
}

type JoinGameCommandHandler struct {
	manager *domain.Manager
}

func NewJoinGameCommandHandler(manager *domain.Manager) *JoinGameCommandHandler {
	return &JoinGameCommandHandler{manager}
}

func (h *JoinGameCommandHandler) Handle(
	ctx context.Context,
	request JoinGameCommand,
) (domain.Game, error) {
	joined, err := h.manager.JoinGame(ctx, request.Code, request.PlayerName)
	if err != nil {
		return domain.Game{}, game.CommandErrorFrom(err)
	}

	return joined, nil
}
