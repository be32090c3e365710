package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/farabi1038/lang-portal/internal/api/middleware"
	"github.com/farabi1038/lang-portal/internal/service/dashboard"
	"github.com/farabi1038/lang-portal/internal/service/study"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
)

// NewRouter builds the portal's HTTP router: standard chi middleware,
// trace IDs for error correlation, the API routes, and a health check.
func NewRouter(
	sessionService study.SessionService,
	vocabService vocab.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	studyHandler := NewStudyHandler(sessionService)
	vocabHandler := NewVocabHandler(vocabService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	settingsHandler := NewSettingsHandler(sessionService)

	r.Route("/api", func(r chi.Router) {
		// Vocabulary browsing
		r.Get("/words", vocabHandler.ListWords)
		r.Get("/words/{id}", vocabHandler.GetWord)
		r.Get("/groups", vocabHandler.ListGroups)
		r.Get("/groups/{id}", vocabHandler.GetGroup)
		r.Get("/groups/{id}/words", vocabHandler.GroupWords)

		// Study activities and sessions
		r.Get("/study_activities", vocabHandler.ListActivities)
		r.Get("/study_activities/{id}", vocabHandler.GetActivity)
		r.Post("/study_activities", studyHandler.LaunchStudyActivity)
		r.Get("/study_sessions", studyHandler.ListSessions)
		r.Get("/study_sessions/{id}", studyHandler.GetSession)
		r.Patch("/study_sessions/{id}", studyHandler.CompleteSession)

		// Split-reporting and scored-submission endpoints
		r.Post("/study/word-stats", studyHandler.RecordWordStat)
		r.Post("/study/activities", studyHandler.AppendReviewRecord)
		r.Post("/study/sessions", studyHandler.SubmitScoredSession)

		// Dashboard
		r.Get("/dashboard/study_progress", dashboardHandler.StudyProgress)
		r.Get("/dashboard/quick_stats", dashboardHandler.QuickStats)
		r.Get("/dashboard/last_study_session", dashboardHandler.LastStudySession)

		// Settings
		r.Post("/reset_history", settingsHandler.ResetHistory)
		r.Post("/full_reset", settingsHandler.FullReset)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
