package domain

import (
	"errors"
	"time"
)

// Word-specific validation errors
var (
	// ErrWordJapaneseEmpty is returned when a word has no Japanese text.
	ErrWordJapaneseEmpty = errors.New("word japanese text cannot be empty")

	// ErrWordRomajiEmpty is returned when a word has no romaji reading.
	ErrWordRomajiEmpty = errors.New("word romaji cannot be empty")

	// ErrWordEnglishEmpty is returned when a word has no English translation.
	ErrWordEnglishEmpty = errors.New("word english translation cannot be empty")

	// ErrWordCountsNegative is returned when a word carries a negative
	// review counter.
	ErrWordCountsNegative = errors.New("word review counters cannot be negative")
)

// Word represents a single vocabulary entry. The correct/wrong counters are
// lifetime aggregates across all study sessions; they only ever increase,
// except when a reset operation zeroes them.
type Word struct {
	ID           int64     `json:"id"`
	Japanese     string    `json:"japanese"`
	Romaji       string    `json:"romaji"`
	English      string    `json:"english"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewWord creates a new Word with zeroed review counters.
// Returns an error if validation fails.
func NewWord(japanese, romaji, english string) (*Word, error) {
	word := &Word{
		Japanese:  japanese,
		Romaji:    romaji,
		English:   english,
		CreatedAt: time.Now().UTC(),
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.Japanese == "" {
		return ErrWordJapaneseEmpty
	}

	if w.Romaji == "" {
		return ErrWordRomajiEmpty
	}

	if w.English == "" {
		return ErrWordEnglishEmpty
	}

	if w.CorrectCount < 0 || w.WrongCount < 0 {
		return ErrWordCountsNegative
	}

	return nil
}

// Exposures returns the total number of times the word has been reviewed.
func (w *Word) Exposures() int {
	return w.CorrectCount + w.WrongCount
}
