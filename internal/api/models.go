package api

import (
	"time"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/service/study"
)

// Common request/response structures

// LaunchSessionRequest defines the payload for starting a study activity.
type LaunchSessionRequest struct {
	ActivityID int64 `json:"activity_id" validate:"required,gt=0"`
	GroupID    int64 `json:"group_id"    validate:"required,gt=0"`
}

// LaunchSessionResponse is the study UI's starting context for a session.
type LaunchSessionResponse struct {
	SessionID    int64  `json:"session_id"`
	ActivityID   int64  `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	ActivityURL  string `json:"activity_url"`
	GroupID      int64  `json:"group_id"`
	GroupName    string `json:"group_name"`
}

// WordStatRequest defines the payload for the counter half of a review.
// Correct is a pointer so an explicit false passes required validation.
type WordStatRequest struct {
	WordID  int64 `json:"word_id" validate:"required,gt=0"`
	Correct *bool `json:"correct" validate:"required"`
}

// ReviewRecordRequest defines the payload for the record half of a review.
type ReviewRecordRequest struct {
	WordID    int64 `json:"word_id"    validate:"required,gt=0"`
	SessionID int64 `json:"session_id" validate:"required,gt=0"`
	Correct   *bool `json:"correct"    validate:"required"`
}

// ScoredSessionRequest defines the payload for submitting an activity that
// reports one final score. ActivityID is optional and defaults to the
// flashcards activity.
type ScoredSessionRequest struct {
	GroupID    int64 `json:"group_id"    validate:"required,gt=0"`
	ActivityID int64 `json:"activity_id" validate:"omitempty,gt=0"`
	Score      *int  `json:"score"       validate:"required,gte=0"`
	Total      *int  `json:"total"       validate:"required,gte=0"`
}

// CompleteSessionRequest defines the payload for sealing a session.
type CompleteSessionRequest struct {
	Score *int `json:"score" validate:"required,gte=0"`
	Total *int `json:"total" validate:"required,gte=0"`
}

// SuccessResponse is the envelope for operations with no data to return.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SessionResponse represents a study session.
type SessionResponse struct {
	ID              int64      `json:"id"`
	GroupID         int64      `json:"group_id"`
	StudyActivityID int64      `json:"study_activity_id"`
	Score           int        `json:"score"`
	Total           int        `json:"total"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SessionSummaryResponse is a session list item enriched with display names.
// Names are empty when the referenced group or activity no longer exists.
type SessionSummaryResponse struct {
	ID              int64      `json:"id"`
	GroupID         int64      `json:"group_id"`
	GroupName       string     `json:"group_name"`
	StudyActivityID int64      `json:"study_activity_id"`
	ActivityName    string     `json:"activity_name"`
	Score           int        `json:"score"`
	Total           int        `json:"total"`
	WordsReviewed   int        `json:"words_reviewed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// WordResponse represents a vocabulary word with its review counters.
type WordResponse struct {
	ID           int64  `json:"id"`
	Japanese     string `json:"japanese"`
	Romaji       string `json:"romaji"`
	English      string `json:"english"`
	CorrectCount int    `json:"correct_count"`
	WrongCount   int    `json:"wrong_count"`
}

// GroupResponse represents a word group.
type GroupResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	WordCount int    `json:"word_count"`
}

// ActivityResponse represents a study activity.
type ActivityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// PaginatedResponse is the envelope for paginated list endpoints.
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

func newPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func sessionToResponse(session *domain.StudySession) SessionResponse {
	return SessionResponse{
		ID:              session.ID,
		GroupID:         session.GroupID,
		StudyActivityID: session.StudyActivityID,
		Score:           session.Score,
		Total:           session.Total,
		CompletedAt:     session.CompletedAt,
		CreatedAt:       session.CreatedAt,
	}
}

func sessionSummariesToResponse(summaries []*study.SessionSummary) []SessionSummaryResponse {
	out := make([]SessionSummaryResponse, len(summaries))
	for i, summary := range summaries {
		out[i] = SessionSummaryResponse{
			ID:              summary.Session.ID,
			GroupID:         summary.Session.GroupID,
			GroupName:       summary.GroupName,
			StudyActivityID: summary.Session.StudyActivityID,
			ActivityName:    summary.ActivityName,
			Score:           summary.Session.Score,
			Total:           summary.Session.Total,
			WordsReviewed:   summary.WordsReviewed,
			CompletedAt:     summary.Session.CompletedAt,
			CreatedAt:       summary.Session.CreatedAt,
		}
	}
	return out
}

func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:           word.ID,
		Japanese:     word.Japanese,
		Romaji:       word.Romaji,
		English:      word.English,
		CorrectCount: word.CorrectCount,
		WrongCount:   word.WrongCount,
	}
}

func wordsToResponse(words []*domain.Word) []WordResponse {
	out := make([]WordResponse, len(words))
	for i, word := range words {
		out[i] = wordToResponse(word)
	}
	return out
}

func groupToResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		WordCount: group.WordCount,
	}
}

func groupsToResponse(groups []*domain.Group) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i, group := range groups {
		out[i] = groupToResponse(group)
	}
	return out
}

func activityToResponse(activity *domain.StudyActivity) ActivityResponse {
	return ActivityResponse{
		ID:   activity.ID,
		Name: activity.Name,
		Kind: string(activity.Kind),
		URL:  activity.URL,
	}
}

func activitiesToResponse(activities []*domain.StudyActivity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		out[i] = activityToResponse(activity)
	}
	return out
}
