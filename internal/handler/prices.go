package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/prices"
)

// PriceService looks up Grand Exchange prices
type PriceService interface {
	Quote(ctx context.Context, id int) (prices.Quote, error)
	Search(ctx context.Context, query string) ([]prices.Quote, error)
}

// HandleGetPrice returns the latest price of one item
// @Summary Get item price
// @Description Latest Grand Exchange trade prices for an item ID
// @Tags prices
// @Produce json
// @Param itemID path int true "Item ID"
// @Success 200 {object} prices.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/prices/{itemID} [get]
func HandleGetPrice(svc PriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "itemID"))
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		quote, err := svc.Quote(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get price", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Price retrieved", "item_id", id, "known", quote.Price.IsSome())
		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleSearchPrices finds items by name and returns their prices
// @Summary Search item prices
// @Description Case-insensitive name search. Falls back to the closest names when nothing matches.
// @Tags prices
// @Produce json
// @Param q query string true "Item name"
// @Success 200 {array} prices.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/prices/search [get]
func HandleSearchPrices(svc PriceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		quotes, err := svc.Search(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Search prices", err)
			return
		}

		logger.FromContext(r.Context()).Info("Price search", "query", query, "results", len(quotes))
		respondJSON(w, http.StatusOK, quotes)
	}
}
