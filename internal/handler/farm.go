package handler

import (
	"net/http"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/profile"
)

// FarmHandlers contains handlers for the farming calculator
type FarmHandlers struct {
	farm     farming.Service
	profiles profile.Service
}

// NewFarmHandlers creates new farming handlers. profiles may be nil when no
// database is configured; requests naming a profile then fail with 503.
func NewFarmHandlers(farm farming.Service, profiles profile.Service) *FarmHandlers {
	return &FarmHandlers{farm: farm, profiles: profiles}
}

// HerbTableRequest is the request body for a herb table. Exactly one of
// Config and Profile must be set.
type HerbTableRequest struct {
	Config  *domain.HerbConfig `json:"config,omitempty"`
	Profile string             `json:"profile,omitempty"`
	// Player is looked up on the hiscores for any level not given. Defaults
	// to the profile's default player.
	Player       string        `json:"player,omitempty" validate:"omitempty,osrsname"`
	FarmingLevel int           `json:"farming_level,omitempty" validate:"omitempty,min=1,max=99"`
	MagicLevel   int           `json:"magic_level,omitempty" validate:"omitempty,min=1,max=99"`
	Herbs        []domain.Herb `json:"herbs,omitempty" validate:"omitempty,unique,dive,herb"`
}

// HerbTableResponse is the computed herb table
type HerbTableResponse struct {
	Levels  domain.Levels       `json:"levels"`
	Patches []farming.PatchInfo `json:"patches"`
	Rows    []domain.HerbStats  `json:"rows"`
}

// PatchesResponse lists a profile's patches and their bonuses
type PatchesResponse struct {
	Profile string              `json:"profile"`
	Patches []farming.PatchInfo `json:"patches"`
}

// HandleHerbTable computes the expected outcome of a herb run for every herb
// @Summary Compute herb table
// @Description Computes survival chance, yield, XP and profit per herb for a patch configuration
// @Tags farming
// @Accept json
// @Produce json
// @Param request body HerbTableRequest true "Herb table request"
// @Success 200 {object} HerbTableResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/farm/herbs [post]
func (h *FarmHandlers) HandleHerbTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req HerbTableRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Herb table"); err != nil {
			return
		}
		if (req.Config == nil) == (req.Profile == "") {
			respondError(w, http.StatusBadRequest, ErrMsgConfigOrProfile)
			return
		}

		herbReq := farming.HerbRequest{
			Player:       req.Player,
			FarmingLevel: req.FarmingLevel,
			MagicLevel:   req.MagicLevel,
			Herbs:        req.Herbs,
		}
		if req.Config != nil {
			herbReq.Config = *req.Config
		} else {
			p, ok := h.loadProfile(w, r, req.Profile)
			if !ok {
				return
			}
			herbReq.Config = p.Config
			if herbReq.Player == "" {
				herbReq.Player = p.DefaultPlayer
			}
		}

		if err := herbReq.Config.Validate(); err != nil {
			respondServiceError(w, r, "Herb table", err)
			return
		}
		levels, err := h.farm.ResolveLevels(ctx, herbReq)
		if err != nil {
			respondServiceError(w, r, "Herb table", err)
			return
		}
		herbReq.FarmingLevel, herbReq.MagicLevel = levels.Farming, levels.Magic

		rows, err := h.farm.HerbTable(ctx, herbReq)
		if err != nil {
			respondServiceError(w, r, "Herb table", err)
			return
		}

		log.Info("Herb table computed",
			"rows", len(rows),
			"patches", len(herbReq.Config.Patches),
			"farming_level", levels.Farming)
		respondJSON(w, http.StatusOK, HerbTableResponse{
			Levels:  levels,
			Patches: h.farm.DescribePatches(&herbReq.Config),
			Rows:    rows,
		})
	}
}

// HandleDescribePatches lists the bonuses of a saved profile's patches
// @Summary Describe profile patches
// @Tags farming
// @Produce json
// @Param profile query string true "Profile name"
// @Success 200 {object} PatchesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/farm/patches [get]
func (h *FarmHandlers) HandleDescribePatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "profile")
		if !ok {
			return
		}
		p, ok := h.loadProfile(w, r, name)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, PatchesResponse{
			Profile: p.Name,
			Patches: h.farm.DescribePatches(&p.Config),
		})
	}
}

// loadProfile writes the error response itself when it returns false.
func (h *FarmHandlers) loadProfile(w http.ResponseWriter, r *http.Request, name string) (*domain.HerbProfile, bool) {
	if h.profiles == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgProfilesDisabled)
		return nil, false
	}
	p, err := h.profiles.Get(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, "Load profile", err)
		return nil, false
	}
	return p, true
}
