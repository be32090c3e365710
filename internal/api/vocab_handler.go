package api

import (
	"net/http"

	"github.com/farabi1038/lang-portal/internal/api/shared"
	"github.com/farabi1038/lang-portal/internal/service/vocab"
)

// VocabHandler handles vocabulary browsing HTTP requests
type VocabHandler struct {
	vocabService vocab.Service
}

// NewVocabHandler creates a new VocabHandler
func NewVocabHandler(vocabService vocab.Service) *VocabHandler {
	if vocabService == nil {
		panic("vocabService cannot be nil") // ALLOW-PANIC: constructor validation
	}
	return &VocabHandler{
		vocabService: vocabService,
	}
}

// ListWords handles GET /api/words requests.
func (h *VocabHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	words, total, err := h.vocabService.ListWords(r.Context(), offset, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaginatedResponse{
		Items:      wordsToResponse(words),
		Pagination: newPagination(page, limit, total),
	})
}

// GetWord handles GET /api/words/{id} requests.
func (h *VocabHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	word, err := h.vocabService.GetWord(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// ListGroups handles GET /api/groups requests.
func (h *VocabHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	groups, total, err := h.vocabService.ListGroups(r.Context(), offset, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PaginatedResponse{
		Items:      groupsToResponse(groups),
		Pagination: newPagination(page, limit, total),
	})
}

// GetGroup handles GET /api/groups/{id} requests.
func (h *VocabHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	group, err := h.vocabService.GetGroup(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, groupToResponse(group))
}

// GroupWords handles GET /api/groups/{id}/words requests. The group's
// word list is the raw material for every study activity, so it is
// returned whole rather than paginated.
func (h *VocabHandler) GroupWords(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	words, err := h.vocabService.GroupWords(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordsToResponse(words))
}

// ListActivities handles GET /api/study_activities requests.
func (h *VocabHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.vocabService.ListActivities(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activitiesToResponse(activities))
}

// GetActivity handles GET /api/study_activities/{id} requests.
func (h *VocabHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	activity, err := h.vocabService.GetActivity(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activityToResponse(activity))
}
