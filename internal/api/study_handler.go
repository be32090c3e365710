package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/farabi1038/lang-portal/internal/api/shared"
	"github.com/farabi1038/lang-portal/internal/service/study"
)

// defaultScoredActivityID is used when a scored session submission omits
// the activity. It matches the seeded flashcards activity.
const defaultScoredActivityID = 1

// StudyHandler handles study session HTTP requests
type StudyHandler struct {
	sessionService study.SessionService
	validator      *validator.Validate
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(sessionService study.SessionService) *StudyHandler {
	if sessionService == nil {
		panic("sessionService cannot be nil") // ALLOW-PANIC: constructor validation
	}
	return &StudyHandler{
		sessionService: sessionService,
		validator:      validator.New(),
	}
}

// respondError maps a service error to its HTTP status and safe message,
// then writes the response and logs the underlying error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// LaunchStudyActivity handles POST /api/study_activities requests. It
// opens a session and returns the context the study UI needs to render
// the activity.
func (h *StudyHandler) LaunchStudyActivity(w http.ResponseWriter, r *http.Request) {
	var req LaunchSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	launch, err := h.sessionService.LaunchSession(r.Context(), req.GroupID, req.ActivityID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, LaunchSessionResponse{
		SessionID:    launch.Session.ID,
		ActivityID:   launch.Session.StudyActivityID,
		ActivityName: launch.ActivityName,
		ActivityURL:  launch.ActivityURL,
		GroupID:      launch.Session.GroupID,
		GroupName:    launch.GroupName,
	})
}

// RecordWordStat handles POST /api/study/word-stats requests. Only the
// word's lifetime counter moves; no session record is written.
func (h *StudyHandler) RecordWordStat(w http.ResponseWriter, r *http.Request) {
	var req WordStatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.sessionService.RecordWordStat(r.Context(), req.WordID, *req.Correct); err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// AppendReviewRecord handles POST /api/study/activities requests. Only
// the session-scoped review record is written; word counters are the
// word-stats endpoint's job.
func (h *StudyHandler) AppendReviewRecord(w http.ResponseWriter, r *http.Request) {
	var req ReviewRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if _, err := h.sessionService.AppendReviewRecord(r.Context(), req.SessionID, req.WordID, *req.Correct); err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// SubmitScoredSession handles POST /api/study/sessions requests. The
// session is created and sealed in one step for activities that report a
// single final score.
func (h *StudyHandler) SubmitScoredSession(w http.ResponseWriter, r *http.Request) {
	var req ScoredSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	activityID := req.ActivityID
	if activityID == 0 {
		activityID = defaultScoredActivityID
	}

	session, err := h.sessionService.SubmitSessionScore(r.Context(), req.GroupID, activityID, *req.Score, *req.Total)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}

// ListSessions handles GET /api/study_sessions requests.
func (h *StudyHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	summaries, total, err := h.sessionService.ListSessionSummaries(r.Context(), offset, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaginatedResponse{
		Items:      sessionSummariesToResponse(summaries),
		Pagination: newPagination(page, limit, total),
	})
}

// GetSession handles GET /api/study_sessions/{id} requests.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	session, err := h.sessionService.GetSession(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// CompleteSession handles PATCH /api/study_sessions/{id} requests. A
// second completion attempt gets 409 Conflict; the first score stands.
func (h *StudyHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req CompleteSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	session, err := h.sessionService.CompleteSession(r.Context(), id, *req.Score, *req.Total)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}
