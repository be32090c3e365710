package mastery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farabi1038/lang-portal/internal/domain"
)

func TestIsMastered(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		correct  int
		wrong    int
		expected bool
	}{
		{
			name:     "never reviewed word is not mastered",
			correct:  0,
			wrong:    0,
			expected: false,
		},
		{
			name:     "two correct reviews are below the exposure threshold",
			correct:  2,
			wrong:    0,
			expected: false,
		},
		{
			name:     "three correct reviews reach the threshold",
			correct:  3,
			wrong:    0,
			expected: true,
		},
		{
			name:     "3 correct 1 wrong is mastered",
			correct:  3,
			wrong:    1,
			expected: true,
		},
		{
			name:     "equal correct and wrong is not mastered",
			correct:  2,
			wrong:    2,
			expected: false,
		},
		{
			name:     "more wrong than correct is not mastered",
			correct:  1,
			wrong:    4,
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, IsMastered(tc.correct, tc.wrong, params))
		})
	}
}

func TestIsMasteredCustomThreshold(t *testing.T) {
	t.Parallel()
	params := NewParams(ParamsConfig{MinExposures: 5})

	assert.False(t, IsMastered(3, 0, params))
	assert.True(t, IsMastered(4, 1, params))
}

func TestIsStudied(t *testing.T) {
	t.Parallel()

	assert.False(t, IsStudied(0, 0))
	assert.True(t, IsStudied(1, 0))
	assert.True(t, IsStudied(0, 1))
}

func TestStudyProgress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		total        int
		studied      int
		mastered     int
		expectedRate int
	}{
		{
			name:         "no words yields zero rate",
			total:        0,
			studied:      0,
			mastered:     0,
			expectedRate: 0,
		},
		{
			name:         "half mastered rounds to 50",
			total:        10,
			studied:      8,
			mastered:     5,
			expectedRate: 50,
		},
		{
			name:         "one of three rounds to 33",
			total:        3,
			studied:      3,
			mastered:     1,
			expectedRate: 33,
		},
		{
			name:         "two of three rounds to 67",
			total:        3,
			studied:      3,
			mastered:     2,
			expectedRate: 67,
		},
		{
			name:         "all mastered yields 100",
			total:        4,
			studied:      4,
			mastered:     4,
			expectedRate: 100,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			progress := StudyProgress(tc.total, tc.studied, tc.mastered)
			assert.Equal(t, tc.total, progress.TotalWords)
			assert.Equal(t, tc.studied, progress.WordsStudied)
			assert.Equal(t, tc.mastered, progress.WordsMastered)
			assert.Equal(t, tc.expectedRate, progress.CompletionRate)
		})
	}
}

func TestProgressForWords(t *testing.T) {
	t.Parallel()

	words := []*domain.Word{
		{Japanese: "こんにちは", Romaji: "konnichiwa", English: "hello", CorrectCount: 3, WrongCount: 1},
		{Japanese: "ありがとう", Romaji: "arigatou", English: "thank you", CorrectCount: 2, WrongCount: 0},
		{Japanese: "さようなら", Romaji: "sayounara", English: "goodbye"},
	}

	progress := ProgressForWords(words, nil)
	assert.Equal(t, 3, progress.TotalWords)
	assert.Equal(t, 2, progress.WordsStudied)
	assert.Equal(t, 1, progress.WordsMastered)
	assert.Equal(t, 33, progress.CompletionRate)
}

func TestComputeQuickStats(t *testing.T) {
	t.Parallel()

	t.Run("single session averages to its own percentage", func(t *testing.T) {
		t.Parallel()
		stats := ComputeQuickStats(1, 10, []SessionScore{{Score: 8, Total: 10}})
		assert.Equal(t, 1, stats.TotalSessions)
		assert.Equal(t, 80, stats.AverageScore)
	})

	t.Run("sessions with zero total are excluded from the average", func(t *testing.T) {
		t.Parallel()
		sessions := []SessionScore{
			{Score: 8, Total: 10},
			{Score: 0, Total: 0},
			{Score: 3, Total: 5},
		}
		stats := ComputeQuickStats(2, 20, sessions)
		assert.Equal(t, 3, stats.TotalSessions)
		// mean(80, 60) = 70
		assert.Equal(t, 70, stats.AverageScore)
	})

	t.Run("no sessions yields zero average", func(t *testing.T) {
		t.Parallel()
		stats := ComputeQuickStats(0, 0, nil)
		assert.Equal(t, 0, stats.TotalSessions)
		assert.Equal(t, 0, stats.AverageScore)
	})
}
