package activity

import (
	"strings"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// TypingEngine prompts with one face of each word and expects the learner
// to type the other. The direction is fixed for the whole run. Matching is
// forgiving about presentation: answers are trimmed and compared
// case-insensitively, but must otherwise be exact.
type TypingEngine struct {
	questions []Question
	direction Direction
	sheet     *answerSheet
}

// Ensure TypingEngine implements the Engine contract.
var _ Engine = (*TypingEngine)(nil)

// NewTypingEngine shuffles the pool and builds one question per word.
// An unset direction defaults to DirectionToEnglish.
func NewTypingEngine(words []*domain.Word, opts Options) *TypingEngine {
	direction := opts.Direction
	if direction == "" {
		direction = DirectionToEnglish
	}

	pool := shuffledPool(words, newRand(opts.Seed))
	if opts.Limit > 0 && len(pool) > opts.Limit {
		pool = pool[:opts.Limit]
	}

	questions := make([]Question, len(pool))
	for i, word := range pool {
		if direction == DirectionToJapanese {
			questions[i] = Question{
				WordID: word.ID,
				Prompt: word.English,
				Answer: word.Romaji,
			}
		} else {
			questions[i] = Question{
				WordID: word.ID,
				Prompt: word.Japanese,
				Romaji: word.Romaji,
				Answer: word.English,
			}
		}
	}

	return &TypingEngine{
		questions: questions,
		direction: direction,
		sheet:     newAnswerSheet(len(questions)),
	}
}

// Direction returns the run's prompt/answer orientation.
func (e *TypingEngine) Direction() Direction {
	return e.direction
}

// Questions implements Engine.Questions.
func (e *TypingEngine) Questions() []Question {
	return e.questions
}

// Submit implements Engine.Submit. The typed input is compared to the
// expected translation after trimming surrounding whitespace, ignoring case.
func (e *TypingEngine) Submit(index int, answer string) (Result, error) {
	if e.IsComplete() {
		return Result{}, ErrRunComplete
	}
	if err := e.sheet.check(index); err != nil {
		return Result{}, err
	}

	expected := e.questions[index].Answer
	correct := answersMatch(answer, expected)
	e.sheet.record(index, correct)

	return Result{
		Correct:       correct,
		CorrectAnswer: expected,
	}, nil
}

// answersMatch implements the typing correctness rule: case-insensitive,
// trimmed, otherwise exact.
func answersMatch(input, expected string) bool {
	return strings.EqualFold(
		strings.TrimSpace(input),
		strings.TrimSpace(expected),
	)
}

// Hint reveals part of the expected answer for the question at the given
// index: the first character, every third character after it, and every
// space; the rest is masked with underscores. The hint is synthesized on
// demand and has no effect on scoring.
func (e *TypingEngine) Hint(index int) (string, error) {
	if index < 0 || index >= len(e.questions) {
		return "", ErrQuestionIndex
	}
	return maskAnswer(e.questions[index].Answer), nil
}

// maskAnswer builds the hint mask. Rune-based so multi-byte answers mask
// cleanly.
func maskAnswer(answer string) string {
	runes := []rune(answer)
	masked := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case i%3 == 0:
			masked[i] = r
		case r == ' ':
			masked[i] = r
		default:
			masked[i] = '_'
		}
	}
	return string(masked)
}

// IsComplete implements Engine.IsComplete.
func (e *TypingEngine) IsComplete() bool {
	return e.sheet.complete()
}

// Summary implements Engine.Summary.
func (e *TypingEngine) Summary() Summary {
	return e.sheet.summary()
}
