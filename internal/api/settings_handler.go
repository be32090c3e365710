package api

import (
	"net/http"

	"github.com/farabi1038/lang-portal/internal/api/shared"
	"github.com/farabi1038/lang-portal/internal/service/study"
)

// SettingsHandler handles the destructive reset HTTP requests
type SettingsHandler struct {
	sessionService study.SessionService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(sessionService study.SessionService) *SettingsHandler {
	if sessionService == nil {
		panic("sessionService cannot be nil") // ALLOW-PANIC: constructor validation
	}
	return &SettingsHandler{
		sessionService: sessionService,
	}
}

// ResetHistory handles POST /api/reset_history requests. Sessions and
// review records are deleted and word counters zeroed; the vocabulary
// itself survives.
func (h *SettingsHandler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.ResetHistory(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Study history has been reset",
	})
}

// FullReset handles POST /api/full_reset requests. Everything is dropped
// and the seed vocabulary reloaded.
func (h *SettingsHandler) FullReset(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.FullReset(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "All data has been reset to the seed vocabulary",
	})
}
