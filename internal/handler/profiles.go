package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/profile"
)

// ProfileHandlers contains handlers for saved herb profiles
type ProfileHandlers struct {
	svc profile.Service
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(svc profile.Service) *ProfileHandlers {
	return &ProfileHandlers{svc: svc}
}

// SaveProfileRequest is the request body for creating or replacing a profile
type SaveProfileRequest struct {
	DefaultPlayer string            `json:"default_player,omitempty" validate:"omitempty,osrsname"`
	Config        domain.HerbConfig `json:"config"`
}

// HandleList lists every saved profile
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.HerbProfile
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List profiles", err)
			return
		}
		respondJSON(w, http.StatusOK, profiles)
	}
}

// HandleGet returns one profile
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} domain.HerbProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{name} [get]
func (h *ProfileHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.svc.Get(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandlePut creates or replaces a profile
// @Summary Save profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param name path string true "Profile name"
// @Param request body SaveProfileRequest true "Profile"
// @Success 200 {object} domain.HerbProfile
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profiles/{name} [put]
func (h *ProfileHandlers) HandlePut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save profile"); err != nil {
			return
		}

		p := &domain.HerbProfile{
			Name:          chi.URLParam(r, "name"),
			DefaultPlayer: req.DefaultPlayer,
			Config:        req.Config,
		}
		if err := h.svc.Save(r.Context(), p); err != nil {
			respondServiceError(w, r, "Save profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile saved via API", "profile", p.Name)
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDelete removes a profile
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{name} [delete]
func (h *ProfileHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
			respondServiceError(w, r, "Delete profile", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
	}
}

// HandleProfilesDisabled answers every profile route when no database is
// configured.
func HandleProfilesDisabled() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusServiceUnavailable, ErrMsgProfilesDisabled)
	}
}
