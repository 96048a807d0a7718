package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/validation"
)

// HiscoreService looks up a player's skills
type HiscoreService interface {
	Player(ctx context.Context, name string) (*domain.Player, error)
}

// HandleGetHiscore returns a player's hiscore entry
// @Summary Get player hiscores
// @Description Rank, level and XP for every skill
// @Tags hiscore
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/hiscore/{player} [get]
func HandleGetHiscore(svc HiscoreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "player")
		if err := validation.Get().ValidateVar(name, "required,osrsname"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerName)
			return
		}

		player, err := svc.Player(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "Get hiscore", err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}
