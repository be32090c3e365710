package activity

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCard(t *testing.T, engine *MatchingEngine, wordID int64, kind CardKind) Card {
	t.Helper()
	for _, card := range engine.Cards() {
		if card.WordID == wordID && card.Kind == kind {
			return card
		}
	}
	t.Fatalf("no %s card for word %d", kind, wordID)
	return Card{}
}

func TestMatchingEngine_BoardLayout(t *testing.T) {
	t.Parallel()

	engine, err := NewMatchingEngine(testWords(t, 4), Options{Seed: 6})
	require.NoError(t, err)

	cards := engine.Cards()
	require.Len(t, cards, 8)

	perWord := make(map[int64]map[CardKind]int, 4)
	for _, card := range cards {
		assert.Equal(t, CardHidden, card.State)
		if perWord[card.WordID] == nil {
			perWord[card.WordID] = make(map[CardKind]int)
		}
		perWord[card.WordID][card.Kind]++
	}
	for wordID, kinds := range perWord {
		assert.Equal(t, 1, kinds[CardSource], "word %d", wordID)
		assert.Equal(t, 1, kinds[CardTarget], "word %d", wordID)
	}
}

func TestMatchingEngine_EmptyPool(t *testing.T) {
	t.Parallel()

	_, err := NewMatchingEngine(nil, Options{Seed: 1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMatchingEngine_MatchAndMismatchFlow(t *testing.T) {
	t.Parallel()

	words := testWords(t, 3)
	engine, err := NewMatchingEngine(words, Options{Seed: 6})
	require.NoError(t, err)

	// Mismatch: source of word 1 against target of word 2.
	outcome, err := engine.Flip(findCard(t, engine, words[0].ID, CardSource).ID)
	require.NoError(t, err)
	assert.False(t, outcome.Compared)

	outcome, err = engine.Flip(findCard(t, engine, words[1].ID, CardTarget).ID)
	require.NoError(t, err)
	assert.True(t, outcome.Compared)
	assert.False(t, outcome.Matched)
	assert.True(t, engine.AwaitingConceal())
	assert.Equal(t, 1, engine.Moves())

	// Flips are ignored until the mismatched pair is concealed.
	outcome, err = engine.Flip(findCard(t, engine, words[2].ID, CardSource).ID)
	require.NoError(t, err)
	assert.True(t, outcome.Ignored)

	engine.Conceal()
	assert.False(t, engine.AwaitingConceal())
	assert.Equal(t, CardHidden, findCard(t, engine, words[0].ID, CardSource).State)

	// Match every pair.
	for i, word := range words {
		_, err = engine.Flip(findCard(t, engine, word.ID, CardSource).ID)
		require.NoError(t, err)
		outcome, err = engine.Flip(findCard(t, engine, word.ID, CardTarget).ID)
		require.NoError(t, err)
		assert.True(t, outcome.Matched)
		assert.Equal(t, i == len(words)-1, outcome.Completed)
	}

	assert.True(t, engine.IsComplete())
	assert.Equal(t, 4, engine.Moves(), "moves count pair comparisons only")

	summary := engine.Summary()
	assert.Equal(t, 3, summary.CorrectCount)
	assert.Equal(t, 1, summary.WrongCount)
	assert.Equal(t, 3, summary.Total)
	assert.Positive(t, engine.Elapsed())
}

func TestMatchingEngine_IgnoresRedundantFlips(t *testing.T) {
	t.Parallel()

	words := testWords(t, 2)
	engine, err := NewMatchingEngine(words, Options{Seed: 4})
	require.NoError(t, err)

	source := findCard(t, engine, words[0].ID, CardSource)

	outcome, err := engine.Flip(source.ID)
	require.NoError(t, err)
	assert.False(t, outcome.Ignored)

	// Re-flipping a revealed card does nothing.
	outcome, err = engine.Flip(source.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Ignored)
	assert.Equal(t, 0, engine.Moves())

	// Matched cards stay matched.
	_, err = engine.Flip(findCard(t, engine, words[0].ID, CardTarget).ID)
	require.NoError(t, err)
	outcome, err = engine.Flip(source.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Ignored)
	assert.Equal(t, CardMatched, findCard(t, engine, words[0].ID, CardSource).State)

	_, err = engine.Flip(-1)
	assert.ErrorIs(t, err, ErrQuestionIndex)
}

func TestMatchingEngine_SubmitDrivesOnePairAttempt(t *testing.T) {
	t.Parallel()

	words := testWords(t, 2)
	engine, err := NewMatchingEngine(words, Options{Seed: 8})
	require.NoError(t, err)

	questions := engine.Questions()
	require.Len(t, questions, 2)

	wrongCard := findCard(t, engine, questions[1].WordID, CardTarget)
	result, err := engine.Submit(0, strconv.Itoa(wrongCard.ID))
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 1, engine.Moves())
	assert.False(t, engine.AwaitingConceal(), "mismatch is concealed immediately")

	rightCard := findCard(t, engine, questions[0].WordID, CardTarget)
	result, err = engine.Submit(0, strconv.Itoa(rightCard.ID))
	require.NoError(t, err)
	assert.True(t, result.Correct)

	_, err = engine.Submit(0, strconv.Itoa(rightCard.ID))
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	result, err = engine.Submit(1, strconv.Itoa(findCard(t, engine, questions[1].WordID, CardTarget).ID))
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.True(t, engine.IsComplete())

	_, err = engine.Submit(1, "0")
	assert.ErrorIs(t, err, ErrRunComplete)

	summary := engine.Summary()
	assert.Equal(t, 2, summary.CorrectCount)
	assert.Equal(t, 1, summary.WrongCount)
}

func TestMatchingEngine_SubmitRejectsPromptCard(t *testing.T) {
	t.Parallel()

	words := testWords(t, 2)
	engine, err := NewMatchingEngine(words, Options{Seed: 8})
	require.NoError(t, err)

	questions := engine.Questions()
	source := findCard(t, engine, questions[0].WordID, CardSource)

	_, err = engine.Submit(0, strconv.Itoa(source.ID))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	// The rejected attempt leaves the board untouched.
	assert.Equal(t, 0, engine.Moves())
	for _, card := range engine.Cards() {
		assert.Equal(t, CardHidden, card.State, "card %d", card.ID)
	}

	// The pair is still winnable afterwards.
	target := findCard(t, engine, questions[0].WordID, CardTarget)
	result, err := engine.Submit(0, strconv.Itoa(target.ID))
	require.NoError(t, err)
	assert.True(t, result.Correct)
}

func TestMatchingEngine_ElapsedUsesClock(t *testing.T) {
	t.Parallel()

	words := testWords(t, 2)
	engine, err := NewMatchingEngine(words, Options{Seed: 3})
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	engine.clock = func() time.Time { return now }

	assert.Zero(t, engine.Elapsed())

	_, err = engine.Flip(findCard(t, engine, words[0].ID, CardSource).ID)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 30*time.Second, engine.Elapsed())

	for _, word := range words {
		_, err = engine.Flip(findCard(t, engine, word.ID, CardSource).ID)
		require.NoError(t, err)
		_, err = engine.Flip(findCard(t, engine, word.ID, CardTarget).ID)
		require.NoError(t, err)
	}
	require.True(t, engine.IsComplete())

	// Completion freezes the timer.
	now = now.Add(time.Minute)
	assert.Equal(t, 30*time.Second, engine.Elapsed())
}
