package queries

import (
	"context"
	"net/http"

	"github.com/eskrenkovic/battleship-go/internal/modules/core"
	"github.com/eskrenkovic/battleship-go/internal/modules/game"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/eskrenkovic/mediator-go"
)

// GetAllGamesQuery is an unfiltered listing kept for diagnostics.
type GetAllGamesQuery struct{}

func HandleGetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := mediator.Send[GetAllGamesQuery, []domain.Game](
		r.Context(),
		GetAllGamesQuery{},
	)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	core.WriteOK(w, r, core.Map(games, game.ResponseFrom))
}

type GetAllGamesQueryHandler struct {
	manager *domain.Manager
}

func NewGetAllGamesQueryHandler(manager *domain.Manager) *GetAllGamesQueryHandler {
	return &GetAllGamesQueryHandler{manager}
}

func (h *GetAllGamesQueryHandler) Handle(
	ctx context.Context,
	request GetAllGamesQuery,
) ([]domain.Game, error) {
	games, err := h.manager.GetAllGames(ctx)
	if err != nil {
		return nil, game.CommandErrorFrom(err)
	}

	return games, nil
}
