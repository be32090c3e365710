package activity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/farabi1038/lang-portal/internal/domain"
)

// DefaultMatchingLimit caps how many words a matching run draws from the
// pool; each word yields a source card and a target card.
const DefaultMatchingLimit = 8

// ConcealDelay is how long a mismatched pair stays face-up before the UI
// flips it back. The engine itself never sleeps; the caller schedules the
// Conceal call so a torn-down run cancels cleanly.
const ConcealDelay = 1200 * time.Millisecond

// CardKind distinguishes the two faces of a word on the board.
type CardKind string

const (
	CardSource CardKind = "source" // japanese face
	CardTarget CardKind = "target" // english face
)

// CardState is the per-card state machine: hidden -> revealed -> matched.
// A revealed card returns to hidden on a mismatch and never leaves matched.
type CardState string

const (
	CardHidden   CardState = "hidden"
	CardRevealed CardState = "revealed"
	CardMatched  CardState = "matched"
)

// Card is one tile on the matching board.
type Card struct {
	ID     int       `json:"id"`
	WordID int64     `json:"word_id"`
	Kind   CardKind  `json:"kind"`
	Text   string    `json:"text"`
	State  CardState `json:"state"`
}

// FlipOutcome describes what a single card flip did.
type FlipOutcome struct {
	// Ignored is true when the flip had no effect: the card was already
	// matched or revealed, or a mismatched pair is still face-up.
	Ignored bool

	// Compared is true when this flip filled the two-card buffer and a
	// pair comparison happened (one move).
	Compared bool

	// Matched is true when the comparison matched a pair.
	Matched bool

	// Completed is true when the board finished on this flip.
	Completed bool
}

// MatchingEngine runs the pair-matching board. It selects up to
// DefaultMatchingLimit words, lays out one source and one target card per
// word, and shuffles all cards together. Moves count pair comparisons, not
// clicks, and the run timer spans first flip to completion.
type MatchingEngine struct {
	words     []*domain.Word
	cards     []Card
	questions []Question

	flipped       []int // card IDs currently face-up, at most two
	awaitConceal  bool  // a mismatched pair is face-up
	moves         int
	matchedWords  map[int64]bool
	mismatches    int
	startedAt     time.Time
	completedAt   time.Time
	clock         func() time.Time
	submitAnswers *answerSheet
}

// Ensure MatchingEngine implements the Engine contract.
var _ Engine = (*MatchingEngine)(nil)

// NewMatchingEngine builds the board. Returns ErrInsufficientData for an
// empty pool.
func NewMatchingEngine(words []*domain.Word, opts Options) (*MatchingEngine, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("matching needs at least one word: %w", ErrInsufficientData)
	}

	limit := opts.Limit
	if limit <= 0 || limit > DefaultMatchingLimit {
		limit = DefaultMatchingLimit
	}

	rng := newRand(opts.Seed)
	pool := shuffledPool(words, rng)
	if len(pool) > limit {
		pool = pool[:limit]
	}

	cards := make([]Card, 0, len(pool)*2)
	questions := make([]Question, len(pool))
	for i, word := range pool {
		cards = append(cards,
			Card{WordID: word.ID, Kind: CardSource, Text: word.Japanese, State: CardHidden},
			Card{WordID: word.ID, Kind: CardTarget, Text: word.English, State: CardHidden},
		)
		questions[i] = Question{
			WordID: word.ID,
			Prompt: word.Japanese,
			Romaji: word.Romaji,
			Answer: word.English,
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].ID = i
	}

	return &MatchingEngine{
		words:         pool,
		cards:         cards,
		questions:     questions,
		matchedWords:  make(map[int64]bool, len(pool)),
		clock:         time.Now,
		submitAnswers: newAnswerSheet(len(pool)),
	}, nil
}

// Cards returns the current board. The slice is the engine's own state;
// callers must treat it as read-only.
func (e *MatchingEngine) Cards() []Card {
	return e.cards
}

// Moves returns how many pair comparisons have happened.
func (e *MatchingEngine) Moves() int {
	return e.moves
}

// AwaitingConceal reports whether a mismatched pair is face-up waiting for
// the Conceal transition.
func (e *MatchingEngine) AwaitingConceal() bool {
	return e.awaitConceal
}

// Flip reveals the card with the given ID and advances the board state.
// Flips are ignored while a mismatched pair is face-up, when the card is
// already revealed or matched, and after completion.
func (e *MatchingEngine) Flip(cardID int) (FlipOutcome, error) {
	if cardID < 0 || cardID >= len(e.cards) {
		return FlipOutcome{}, fmt.Errorf("card %d: %w", cardID, ErrQuestionIndex)
	}

	if e.IsComplete() || e.awaitConceal {
		return FlipOutcome{Ignored: true}, nil
	}

	card := &e.cards[cardID]
	if card.State != CardHidden || len(e.flipped) >= 2 {
		return FlipOutcome{Ignored: true}, nil
	}

	if e.startedAt.IsZero() {
		e.startedAt = e.clock()
	}

	card.State = CardRevealed
	e.flipped = append(e.flipped, cardID)

	if len(e.flipped) < 2 {
		return FlipOutcome{}, nil
	}

	// Buffer full: one pair comparison, one move.
	e.moves++
	first := &e.cards[e.flipped[0]]
	second := &e.cards[e.flipped[1]]

	if first.WordID == second.WordID && first.Kind != second.Kind {
		first.State = CardMatched
		second.State = CardMatched
		e.matchedWords[first.WordID] = true
		e.flipped = e.flipped[:0]

		outcome := FlipOutcome{Compared: true, Matched: true}
		if len(e.matchedWords) == len(e.words) {
			e.completedAt = e.clock()
			outcome.Completed = true
		}
		return outcome, nil
	}

	// Mismatch: the pair stays face-up until Conceal, which the caller
	// schedules after ConcealDelay.
	e.mismatches++
	e.awaitConceal = true
	return FlipOutcome{Compared: true}, nil
}

// Conceal flips a mismatched pair back to hidden and clears the buffer.
// A no-op unless a mismatched pair is face-up.
func (e *MatchingEngine) Conceal() {
	if !e.awaitConceal {
		return
	}
	for _, id := range e.flipped {
		e.cards[id].State = CardHidden
	}
	e.flipped = e.flipped[:0]
	e.awaitConceal = false
}

// Elapsed returns the wall-clock span between the first flip and
// completion, or between the first flip and now while the run is live.
// Zero before the first flip.
func (e *MatchingEngine) Elapsed() time.Duration {
	if e.startedAt.IsZero() {
		return 0
	}
	if !e.completedAt.IsZero() {
		return e.completedAt.Sub(e.startedAt)
	}
	return e.clock().Sub(e.startedAt)
}

// Questions implements Engine.Questions: one question per word on the board.
func (e *MatchingEngine) Questions() []Question {
	return e.questions
}

// Submit implements Engine.Submit for programmatic drivers: it flips the
// source card of the indexed word and then the card named by answer (a card
// ID in decimal), performing exactly one pair comparison. Naming the source
// card itself is rejected with ErrInvalidAnswer. A mismatch is concealed
// immediately since no UI timer is running.
func (e *MatchingEngine) Submit(index int, answer string) (Result, error) {
	if e.IsComplete() {
		return Result{}, ErrRunComplete
	}
	if index < 0 || index >= len(e.questions) {
		return Result{}, ErrQuestionIndex
	}

	wordID := e.questions[index].WordID
	if e.matchedWords[wordID] {
		return Result{}, ErrAlreadyAnswered
	}

	targetCard, err := strconv.Atoi(answer)
	if err != nil {
		return Result{}, fmt.Errorf("card id %q: %w", answer, ErrInvalidAnswer)
	}

	sourceCard := -1
	for _, card := range e.cards {
		if card.WordID == wordID && card.Kind == CardSource {
			sourceCard = card.ID
			break
		}
	}
	if targetCard == sourceCard {
		return Result{}, fmt.Errorf("card %d is the prompt card itself: %w", targetCard, ErrInvalidAnswer)
	}

	if _, err := e.Flip(sourceCard); err != nil {
		return Result{}, err
	}
	outcome, err := e.Flip(targetCard)
	if err != nil {
		return Result{}, err
	}

	if !outcome.Matched {
		e.Conceal()
	}
	if index < len(e.submitAnswers.answered) && !e.submitAnswers.answered[index] && outcome.Compared {
		e.submitAnswers.record(index, outcome.Matched)
	}

	return Result{
		Correct:       outcome.Matched,
		CorrectAnswer: e.questions[index].Answer,
	}, nil
}

// IsComplete implements Engine.IsComplete: every word has a matched pair.
func (e *MatchingEngine) IsComplete() bool {
	return len(e.matchedWords) == len(e.words)
}

// Summary implements Engine.Summary. Correct counts matched words; wrong
// counts failed pair comparisons.
func (e *MatchingEngine) Summary() Summary {
	return Summary{
		CorrectCount: len(e.matchedWords),
		WrongCount:   e.mismatches,
		Total:        len(e.words),
	}
}
