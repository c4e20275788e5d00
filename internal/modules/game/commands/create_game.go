package commands

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
)

type CreateGameCommand struct {
	PlayerName string `json:"playerName"`
}

func (c CreateGameCommand) Validate() error {
	if c.PlayerName == "" {
		return fmt.Errorf("invalid PlayerName - '%s'", c.PlayerName)
	}

	return nil
}

func HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	command, err := core.RequestBody[CreateGameCommand](r)
	if err != nil {
		core.WriteBadRequest(w, r, err)
		return
	}

	created, err := mediator.Send[CreateGameCommand, domain.Game](r.Context(), command)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	location := path.Join(r.Host, "api", "games", created.Code)
	core.WriteCreated(w, r, location, game.ResponseFrom(created))
}

type CreateGameCommandHandler struct {
	manager *domain.Manager
}

func NewCreateGameCommandHandler(manager *domain.Manager) *CreateGameCommandHandler {
	return &CreateGameCommandHandler{manager}
}

func (h *CreateGameCommandHandler) Handle(
	ctx context.Context,
	request CreateGameCommand,
) (domain.Game, error) {
	created, err := h.manager.CreateGame(ctx, request.PlayerName)
	if err != nil {
		return domain.Game{}, game.CommandErrorFrom(err)
	}

	return created, nil
}
