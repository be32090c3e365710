// Package seed holds the fixed starter dataset of the portal: the four
// study activities and a small set of starter groups with their words.
// The same data is applied by the `seed` command on first install and by
// the full-reset operation, which restores it inside its transaction.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

// Entry is one seed word with the name of the group it belongs to.
type Entry struct {
	Japanese string
	Romaji   string
	English  string
	Group    string
}

// Activities returns the fixed study-activity set. IDs are explicit so the
// well-known activity numbering survives a full reset.
func Activities() []*domain.StudyActivity {
	now := time.Now().UTC()
	return []*domain.StudyActivity{
		{ID: 1, Name: "Flashcards", Kind: domain.ActivityFlashcards, URL: "/study/flashcards", CreatedAt: now},
		{ID: 2, Name: "Multiple Choice", Kind: domain.ActivityMultipleChoice, URL: "/study/multiple-choice", CreatedAt: now},
		{ID: 3, Name: "Typing Practice", Kind: domain.ActivityTyping, URL: "/study/typing", CreatedAt: now},
		{ID: 4, Name: "Matching Game", Kind: domain.ActivityMatching, URL: "/study/matching", CreatedAt: now},
	}
}

// Groups returns the fixed starter groups. IDs are explicit like the
// activity set so the groups stay addressable at the same IDs after a
// full reset.
func Groups() []*domain.Group {
	now := time.Now().UTC()
	return []*domain.Group{
		{ID: 1, Name: "Basic Greetings", CreatedAt: now},
		{ID: 2, Name: "Numbers", CreatedAt: now},
		{ID: 3, Name: "Food", CreatedAt: now},
	}
}

// Words returns the starter vocabulary grouped by theme. Each entry's
// position determines its word ID, so the list is append-only.
func Words() []Entry {
	return []Entry{
		{Japanese: "こんにちは", Romaji: "konnichiwa", English: "hello", Group: "Basic Greetings"},
		{Japanese: "おはよう", Romaji: "ohayou", English: "good morning", Group: "Basic Greetings"},
		{Japanese: "こんばんは", Romaji: "konbanwa", English: "good evening", Group: "Basic Greetings"},
		{Japanese: "さようなら", Romaji: "sayounara", English: "goodbye", Group: "Basic Greetings"},
		{Japanese: "ありがとう", Romaji: "arigatou", English: "thank you", Group: "Basic Greetings"},
		{Japanese: "すみません", Romaji: "sumimasen", English: "excuse me", Group: "Basic Greetings"},

		{Japanese: "一", Romaji: "ichi", English: "one", Group: "Numbers"},
		{Japanese: "二", Romaji: "ni", English: "two", Group: "Numbers"},
		{Japanese: "三", Romaji: "san", English: "three", Group: "Numbers"},
		{Japanese: "四", Romaji: "yon", English: "four", Group: "Numbers"},
		{Japanese: "五", Romaji: "go", English: "five", Group: "Numbers"},
		{Japanese: "十", Romaji: "juu", English: "ten", Group: "Numbers"},
		{Japanese: "百", Romaji: "hyaku", English: "hundred", Group: "Numbers"},

		{Japanese: "水", Romaji: "mizu", English: "water", Group: "Food"},
		{Japanese: "ご飯", Romaji: "gohan", English: "rice", Group: "Food"},
		{Japanese: "魚", Romaji: "sakana", English: "fish", Group: "Food"},
		{Japanese: "肉", Romaji: "niku", English: "meat", Group: "Food"},
		{Japanese: "お茶", Romaji: "ocha", English: "tea", Group: "Food"},
		{Japanese: "野菜", Romaji: "yasai", English: "vegetable", Group: "Food"},
	}
}

// Apply inserts the full seed set through the given stores. Callers that
// need atomicity (the full reset) pass transaction-scoped stores.
// All rows carry explicit IDs so consecutive full resets restore the
// identical snapshot.
func Apply(
	ctx context.Context,
	activityStore store.StudyActivityStore,
	groupStore store.GroupStore,
	wordStore store.WordStore,
) error {
	for _, activity := range Activities() {
		if err := activityStore.Create(ctx, activity); err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", activity.Name, err)
		}
	}

	groupIDs := make(map[string]int64)
	for _, group := range Groups() {
		if err := groupStore.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to seed group %q: %w", group.Name, err)
		}
		groupIDs[group.Name] = group.ID
	}

	for i, entry := range Words() {
		groupID, ok := groupIDs[entry.Group]
		if !ok {
			return fmt.Errorf("seed word %q references unknown group %q", entry.Japanese, entry.Group)
		}

		word, err := domain.NewWord(entry.Japanese, entry.Romaji, entry.English)
		if err != nil {
			return fmt.Errorf("invalid seed word %q: %w", entry.Japanese, err)
		}
		word.ID = int64(i + 1)
		if err := wordStore.Create(ctx, word); err != nil {
			return fmt.Errorf("failed to seed word %q: %w", entry.Japanese, err)
		}

		if err := groupStore.AddWord(ctx, groupID, word.ID); err != nil {
			return fmt.Errorf("failed to link seed word %q to group %q: %w",
				entry.Japanese, entry.Group, err)
		}
	}

	return nil
}
