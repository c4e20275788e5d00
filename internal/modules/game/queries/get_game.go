package queries

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

type GetGameQuery struct {
	Code string
}

func (q GetGameQuery) Validate() error {
	if q.Code == "" {
		return fmt.Errorf("invalid Code - '%s'", q.Code)
	}

	return nil
}

func HandleGetGame(w http.ResponseWriter, r *http.Request) {
	query := GetGameQuery{Code: chi.URLParam(r, "id")}

	found, err := mediator.Send[GetGameQuery, domain.Game](r.Context(), query)
	if err != nil {
		game.WriteError(w, r, err)
		return
	}

	core.WriteOK(w, r, game.ResponseFrom(found))
}

type GetGameQueryHandler struct {
	manager *domain.Manager
}

func NewGetGameQueryHandler(manager *domain.Manager) *GetGameQueryHandler {
	return &GetGameQueryHandler{manager}
}

func (h *GetGameQueryHandler) Handle(
	ctx context.Context,
	request GetGameQuery,
) (domain.Game, error) {
	found, err := h.manager.GetGame(ctx, request.Code)
	if err != nil {
		return domain.Game{}, game.CommandErrorFrom(err)
	}

	return found, nil
}
