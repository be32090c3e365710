package activity

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipleChoiceEngine_RequiresMinimumPool(t *testing.T) {
	t.Parallel()

	_, err := NewMultipleChoiceEngine(testWords(t, 3), Options{Seed: 1})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestMultipleChoiceEngine_OptionsContainAnswer(t *testing.T) {
	t.Parallel()

	engine, err := NewMultipleChoiceEngine(testWords(t, 10), Options{Seed: 7})
	require.NoError(t, err)

	for _, question := range engine.Questions() {
		require.Len(t, question.Options, 4)

		seen := make(map[int64]bool, 4)
		foundAnswer := false
		for _, option := range question.Options {
			assert.False(t, seen[option.WordID], "options must be distinct words")
			seen[option.WordID] = true
			if option.WordID == question.WordID {
				foundAnswer = true
				assert.Equal(t, question.Answer, option.Text)
			}
		}
		assert.True(t, foundAnswer, "correct answer must appear among the options")
	}
}

func TestMultipleChoiceEngine_ScoresBySelectedWord(t *testing.T) {
	t.Parallel()

	engine, err := NewMultipleChoiceEngine(testWords(t, 6), Options{Seed: 3})
	require.NoError(t, err)

	questions := engine.Questions()

	// Answer the first question correctly.
	result, err := engine.Submit(0, strconv.FormatInt(questions[0].WordID, 10))
	require.NoError(t, err)
	assert.True(t, result.Correct)

	// Answer the second with a distractor.
	var distractor int64
	for _, option := range questions[1].Options {
		if option.WordID != questions[1].WordID {
			distractor = option.WordID
			break
		}
	}
	result, err = engine.Submit(1, strconv.FormatInt(distractor, 10))
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, questions[1].Answer, result.CorrectAnswer)

	summary := engine.Summary()
	assert.Equal(t, 1, summary.CorrectCount)
	assert.Equal(t, 1, summary.WrongCount)
}

func TestMultipleChoiceEngine_RejectsNonNumericAnswer(t *testing.T) {
	t.Parallel()

	engine, err := NewMultipleChoiceEngine(testWords(t, 5), Options{Seed: 2})
	require.NoError(t, err)

	_, err = engine.Submit(0, "hello")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestMultipleChoiceEngine_AnswerPositionVariesAcrossSeeds(t *testing.T) {
	t.Parallel()

	words := testWords(t, 8)
	positions := make(map[int]bool, 4)

	// The shuffle puts the correct option in each of the four slots with
	// equal probability, so over 200 seeds every slot must be hit; a fixed
	// answer position would leave three of them empty.
	for seed := int64(1); seed <= 200; seed++ {
		engine, err := NewMultipleChoiceEngine(words, Options{Seed: seed})
		require.NoError(t, err)

		question := engine.Questions()[0]
		for i, option := range question.Options {
			if option.WordID == question.WordID {
				positions[i] = true
			}
		}
	}

	for slot := 0; slot < 4; slot++ {
		assert.True(t, positions[slot], "correct option never landed in slot %d", slot)
	}
}

func TestMultipleChoiceEngine_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	words := testWords(t, 12)
	first, err := NewMultipleChoiceEngine(words, Options{Seed: 11})
	require.NoError(t, err)
	second, err := NewMultipleChoiceEngine(words, Options{Seed: 11})
	require.NoError(t, err)

	for i, question := range first.Questions() {
		other := second.Questions()[i]
		assert.Equal(t, question.WordID, other.WordID)
		require.Len(t, other.Options, len(question.Options))
		for j, option := range question.Options {
			assert.Equal(t, option.WordID, other.Options[j].WordID)
		}
	}
}
