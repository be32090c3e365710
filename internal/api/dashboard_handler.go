package api

import (
	"errors"
	"net/http"

	"github.com/farabi1038/lang-portal/internal/api/shared"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService dashboard.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	if dashboardService == nil {
		panic("dashboardService cannot be nil") // ALLOW-PANIC: constructor validation
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// StudyProgress handles GET /api/dashboard/study_progress requests.
func (h *DashboardHandler) StudyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.dashboardService.StudyProgress(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}

// QuickStats handles GET /api/dashboard/quick_stats requests.
func (h *DashboardHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.QuickStats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// LastStudySession handles GET /api/dashboard/last_study_session requests.
// An empty study history is not an error for the dashboard; it responds
// 200 with a null payload so the UI can render the empty state.
func (h *DashboardHandler) LastStudySession(w http.ResponseWriter, r *http.Request) {
	last, err := h.dashboardService.LastStudySession(r.Context())
	if err != nil {
		if errors.Is(err, dashboard.ErrNoSessions) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, last)
}
