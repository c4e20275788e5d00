package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
)

// GetAvailableGamesQuery backs the lobby browser - every game still waiting
// for its second player.
type GetAvailableGamesQuery struct{}

func HandleGetAvailableGames(w http.ResponseWriter, r *http.Request) {
	available, err := mediator.Send[GetAvailableGamesQuery, []domain.Game](
		r.Context(),
		GetAvailableGamesQuery{},
	)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	core.WriteOK(w, r, core.Map(available, game.ResponseFrom))
}

type GetAvailableGamesQueryHandler struct {
	manager *domain.Manager
}

func NewGetAvailableGamesQueryHandler(manager *domain.Manager) *GetAvailableGamesQueryHandler {
	return &GetAvailableGamesQueryHandler{manager}
}

func (h *GetAvailableGamesQueryHandler) Handle(
	ctx context.Context,
	request GetAvailableGamesQuery,
) ([]domain.Game, error) {
	available, err := h.manager.GetAvailableGames(ctx)
	if err != nil {
		return nil, game.CommandErrorFrom(err)
	}

	return available, nil
}
