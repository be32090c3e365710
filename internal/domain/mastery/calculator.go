// Package mastery implements the pure progress and mastery math of the
// portal: which words count as studied or mastered, the overall completion
// rate, and the dashboard quick stats. All functions are stateless and
// operate on aggregate counters supplied by the caller.
package mastery

import (
	"math"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// Progress is the derived study-progress view shown on the dashboard.
type Progress struct {
	TotalWords     int `json:"total_words"`
	WordsStudied   int `json:"words_studied"`
	WordsMastered  int `json:"words_mastered"`
	CompletionRate int `json:"completion_rate"`
}

// QuickStats is the dashboard summary across all sessions.
type QuickStats struct {
	TotalGroups   int `json:"total_groups"`
	TotalWords    int `json:"total_words"`
	TotalSessions int `json:"total_sessions"`
	AverageScore  int `json:"average_score"`
}

// SessionScore is the minimal session shape needed for quick stats.
type SessionScore struct {
	Score int
	Total int
}

// IsStudied reports whether a word has been reviewed at least once.
func IsStudied(correctCount, wrongCount int) bool {
	return correctCount+wrongCount > 0
}

// IsMastered reports whether a word counts as durably learned: more correct
// than wrong reviews, with at least params.MinExposures total reviews.
func IsMastered(correctCount, wrongCount int, params *Params) bool {
	if params == nil {
		params = NewDefaultParams()
	}

	exposures := correctCount + wrongCount
	return correctCount > wrongCount && exposures >= params.MinExposures
}

// StudyProgress computes the dashboard progress view from aggregate counts.
// CompletionRate = round(masteredWords*100/totalWords), or 0 when there are
// no words at all.
func StudyProgress(totalWords, studiedWords, masteredWords int) Progress {
	rate := 0
	if totalWords > 0 {
		rate = int(math.Round(float64(masteredWords) * 100 / float64(totalWords)))
	}

	return Progress{
		TotalWords:     totalWords,
		WordsStudied:   studiedWords,
		WordsMastered:  masteredWords,
		CompletionRate: rate,
	}
}

// ProgressForWords classifies a word list and computes the progress view.
// Convenience over StudyProgress for callers that hold full words.
func ProgressForWords(words []*domain.Word, params *Params) Progress {
	studied := 0
	mastered := 0

	for _, w := range words {
		if IsStudied(w.CorrectCount, w.WrongCount) {
			studied++
		}
		if IsMastered(w.CorrectCount, w.WrongCount, params) {
			mastered++
		}
	}

	return StudyProgress(len(words), studied, mastered)
}

// ComputeQuickStats builds the dashboard summary. The average score is the
// rounded mean of score/total*100 across sessions with total > 0; sessions
// with total = 0 are excluded so an abandoned session cannot skew the mean.
func ComputeQuickStats(totalGroups, totalWords int, sessions []SessionScore) QuickStats {
	stats := QuickStats{
		TotalGroups:   totalGroups,
		TotalWords:    totalWords,
		TotalSessions: len(sessions),
	}

	sum := 0.0
	scored := 0
	for _, s := range sessions {
		if s.Total <= 0 {
			continue
		}
		sum += float64(s.Score) * 100 / float64(s.Total)
		scored++
	}

	if scored > 0 {
		stats.AverageScore = int(math.Round(sum / float64(scored)))
	}

	return stats
}
