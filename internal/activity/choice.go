package activity

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// MinChoicePoolSize is the smallest word pool multiple choice can run on:
// one correct answer plus three distractors.
const MinChoicePoolSize = 4

// distractorsPerQuestion is how many wrong options accompany the correct one.
const distractorsPerQuestion = 3

// MultipleChoiceEngine runs a four-option quiz. For every target word it
// samples distractors without replacement from the rest of the pool and
// shuffles the assembled options so the correct answer's position is
// uniformly distributed.
type MultipleChoiceEngine struct {
	questions []Question
	sheet     *answerSheet
}

// Ensure MultipleChoiceEngine implements the Engine contract.
var _ Engine = (*MultipleChoiceEngine)(nil)

// NewMultipleChoiceEngine builds the question set. Returns
// ErrInsufficientData when the pool holds fewer than MinChoicePoolSize
// words.
func NewMultipleChoiceEngine(words []*domain.Word, opts Options) (*MultipleChoiceEngine, error) {
	if len(words) < MinChoicePoolSize {
		return nil, fmt.Errorf(
			"multiple choice needs at least %d words, got %d: %w",
			MinChoicePoolSize, len(words), ErrInsufficientData,
		)
	}

	rng := newRand(opts.Seed)
	pool := shuffledPool(words, rng)
	targets := pool
	if opts.Limit > 0 && len(targets) > opts.Limit {
		targets = targets[:opts.Limit]
	}

	questions := make([]Question, len(targets))
	for i, target := range targets {
		questions[i] = Question{
			WordID:  target.ID,
			Prompt:  target.Japanese,
			Romaji:  target.Romaji,
			Answer:  target.English,
			Options: buildOptions(target, pool, rng),
		}
	}

	return &MultipleChoiceEngine{
		questions: questions,
		sheet:     newAnswerSheet(len(questions)),
	}, nil
}

// buildOptions assembles the option set for one target: the correct answer
// plus up to distractorsPerQuestion words sampled without replacement from
// the remaining pool. If fewer distractors are available the option set is
// simply smaller; the correct option is never duplicated. The final set is
// shuffled.
func buildOptions(target *domain.Word, pool []*domain.Word, rng *rand.Rand) []Option {
	candidates := make([]*domain.Word, 0, len(pool)-1)
	for _, word := range pool {
		if word.ID != target.ID {
			candidates = append(candidates, word)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	count := distractorsPerQuestion
	if count > len(candidates) {
		count = len(candidates)
	}

	options := make([]Option, 0, count+1)
	options = append(options, Option{WordID: target.ID, Text: target.English})
	for _, distractor := range candidates[:count] {
		options = append(options, Option{WordID: distractor.ID, Text: distractor.English})
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// Questions implements Engine.Questions.
func (e *MultipleChoiceEngine) Questions() []Question {
	return e.questions
}

// Submit implements Engine.Submit. The answer is the selected option's word
// ID in decimal; the question is correct when it equals the target word's ID.
func (e *MultipleChoiceEngine) Submit(index int, answer string) (Result, error) {
	if e.IsComplete() {
		return Result{}, ErrRunComplete
	}
	if err := e.sheet.check(index); err != nil {
		return Result{}, err
	}

	selectedID, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return Result{}, fmt.Errorf("option id %q: %w", answer, ErrInvalidAnswer)
	}

	question := e.questions[index]
	correct := selectedID == question.WordID
	e.sheet.record(index, correct)

	return Result{
		Correct:       correct,
		CorrectAnswer: question.Answer,
	}, nil
}

// IsComplete implements Engine.IsComplete.
func (e *MultipleChoiceEngine) IsComplete() bool {
	return e.sheet.complete()
}

// Summary implements Engine.Summary.
func (e *MultipleChoiceEngine) Summary() Summary {
	return e.sheet.summary()
}
