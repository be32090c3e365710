// Package activity implements the four interactive study engines of the
// portal: flashcards, multiple choice, typing, and matching. An engine is a
// single-threaded in-memory state machine for one study run: it builds a
// finite ordered question set from a word pool, scores submitted answers,
// and reports completion. Engines persist nothing themselves; the caller
// forwards each result to the study service and completes the session once
// the run is over.
package activity

import (
	"errors"
	"math/rand"
	"time"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// Common engine errors.
var (
	// ErrInsufficientData is returned when a word pool does not satisfy an
	// engine's precondition (e.g. multiple choice needs at least four
	// words). The UI surfaces this as a blocking message, not a crash.
	ErrInsufficientData = errors.New("not enough words for this activity")

	// ErrQuestionIndex is returned when a submitted question index is out
	// of range.
	ErrQuestionIndex = errors.New("question index out of range")

	// ErrAlreadyAnswered is returned when a question receives a second
	// answer. Engines answer each word at most once per run.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrRunComplete is returned when an answer arrives after the run has
	// finished.
	ErrRunComplete = errors.New("study run already complete")

	// ErrInvalidAnswer is returned when a submitted answer is not in the
	// form the engine expects (unknown self-report, non-numeric option id,
	// unknown card id).
	ErrInvalidAnswer = errors.New("invalid answer")
)

// Option is one selectable choice in a multiple-choice question.
type Option struct {
	WordID int64  `json:"word_id"`
	Text   string `json:"text"`
}

// Question is a single item in a study run. Prompt is the face shown to the
// learner; Answer is the expected response. Options is populated only by
// the multiple-choice engine.
type Question struct {
	WordID  int64    `json:"word_id"`
	Prompt  string   `json:"prompt"`
	Romaji  string   `json:"romaji,omitempty"`
	Answer  string   `json:"answer"`
	Options []Option `json:"options,omitempty"`
}

// Result reports how one submitted answer was scored.
type Result struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// Summary aggregates a run's outcomes.
type Summary struct {
	CorrectCount int `json:"correct_count"`
	WrongCount   int `json:"wrong_count"`
	Total        int `json:"total"`
}

// Engine is the contract shared by the four study engines.
type Engine interface {
	// Questions returns the run's finite ordered question set.
	Questions() []Question

	// Submit scores the answer for the question at the given index.
	// Each question accepts exactly one answer.
	Submit(index int, answer string) (Result, error)

	// IsComplete reports whether every question has been answered.
	IsComplete() bool

	// Summary returns the run's aggregate outcome counts.
	Summary() Summary
}

// Options configures an engine run.
type Options struct {
	// Seed fixes the shuffle order. Zero means a time-based seed, i.e. a
	// different order every run.
	Seed int64

	// Limit caps the question count. Zero means the engine's default cap.
	Limit int

	// Direction selects the prompt/answer orientation for the typing
	// engine. It is a property of the run, not of individual questions.
	Direction Direction
}

// Direction is the typing engine's prompt/answer orientation.
type Direction string

const (
	// DirectionToEnglish prompts with the Japanese text and expects the
	// English translation.
	DirectionToEnglish Direction = "to_english"

	// DirectionToJapanese prompts with the English text and expects the
	// romaji reading.
	DirectionToJapanese Direction = "to_japanese"
)

// newRand builds the run's random source. A zero seed falls back to the
// wall clock so unseeded runs differ from each other.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffledPool copies and shuffles the word pool without mutating the
// caller's slice.
func shuffledPool(words []*domain.Word, rng *rand.Rand) []*domain.Word {
	pool := make([]*domain.Word, len(words))
	copy(pool, words)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}

// answerSheet tracks which questions have been answered and the running
// tally. It backs every engine's Submit bookkeeping.
type answerSheet struct {
	answered []bool
	correct  int
	wrong    int
}

func newAnswerSheet(total int) *answerSheet {
	return &answerSheet{answered: make([]bool, total)}
}

// check validates the index and one-answer-per-question rule.
func (a *answerSheet) check(index int) error {
	if index < 0 || index >= len(a.answered) {
		return ErrQuestionIndex
	}
	if a.answered[index] {
		return ErrAlreadyAnswered
	}
	return nil
}

// record marks the question answered and tallies the outcome.
func (a *answerSheet) record(index int, correct bool) {
	a.answered[index] = true
	if correct {
		a.correct++
	} else {
		a.wrong++
	}
}

func (a *answerSheet) complete() bool {
	return a.correct+a.wrong == len(a.answered)
}

func (a *answerSheet) summary() Summary {
	return Summary{
		CorrectCount: a.correct,
		WrongCount:   a.wrong,
		Total:        len(a.answered),
	}
}
