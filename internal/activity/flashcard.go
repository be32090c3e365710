package activity

import (
	"fmt"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// DefaultFlashcardLimit caps a flashcard run; shorter pools run in full.
const DefaultFlashcardLimit = 20

// Self-report answers accepted by the flashcard engine. Flashcard scoring
// is a deliberate product decision: the learner judges their own recall and
// the engine records the claim without verification.
const (
	SelfReportCorrect = "correct"
	SelfReportWrong   = "wrong"
)

// FlashcardEngine runs a self-scored flashcard session. Both faces of each
// card are exposed in the question (the learner flips at their own pace),
// so Submit only records the learner's own verdict.
type FlashcardEngine struct {
	questions []Question
	sheet     *answerSheet
}

// Ensure FlashcardEngine implements the Engine contract.
var _ Engine = (*FlashcardEngine)(nil)

// NewFlashcardEngine shuffles the pool and caps the run at
// min(limit, len(words)). An empty pool yields an engine with zero
// questions; the caller must not open a session for it.
func NewFlashcardEngine(words []*domain.Word, opts Options) *FlashcardEngine {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultFlashcardLimit
	}

	pool := shuffledPool(words, newRand(opts.Seed))
	if len(pool) > limit {
		pool = pool[:limit]
	}

	questions := make([]Question, len(pool))
	for i, word := range pool {
		questions[i] = Question{
			WordID: word.ID,
			Prompt: word.Japanese,
			Romaji: word.Romaji,
			Answer: word.English,
		}
	}

	return &FlashcardEngine{
		questions: questions,
		sheet:     newAnswerSheet(len(questions)),
	}
}

// Questions implements Engine.Questions.
func (e *FlashcardEngine) Questions() []Question {
	return e.questions
}

// Submit implements Engine.Submit. The answer is the learner's self-report:
// SelfReportCorrect or SelfReportWrong.
func (e *FlashcardEngine) Submit(index int, answer string) (Result, error) {
	if e.IsComplete() {
		return Result{}, ErrRunComplete
	}
	if err := e.sheet.check(index); err != nil {
		return Result{}, err
	}

	var correct bool
	switch answer {
	case SelfReportCorrect:
		correct = true
	case SelfReportWrong:
		correct = false
	default:
		return Result{}, fmt.Errorf("unknown self-report %q: %w", answer, ErrInvalidAnswer)
	}

	e.sheet.record(index, correct)
	return Result{
		Correct:       correct,
		CorrectAnswer: e.questions[index].Answer,
	}, nil
}

// IsComplete implements Engine.IsComplete.
func (e *FlashcardEngine) IsComplete() bool {
	return e.sheet.complete()
}

// Summary implements Engine.Summary.
func (e *FlashcardEngine) Summary() Summary {
	return e.sheet.summary()
}
