// Package importer loads vocabulary from xlsx workbooks into the portal.
// Each data row carries Japanese | Romaji | English | Group; groups are
// created on first sight and every word is linked to its group.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/farabi1038/lang-portal/internal/domain"
	"github.com/farabi1038/lang-portal/internal/store"
)

// ErrNoSheet indicates the workbook has no sheets to read.
var ErrNoSheet = errors.New("workbook contains no sheets")

// Columns of a data row, zero-based.
const (
	colJapanese = 0
	colRomaji   = 1
	colEnglish  = 2
	colGroup    = 3
)

// Result summarizes one import run. Row errors are collected rather than
// aborting the run, so one bad row does not lose the rest of the sheet.
type Result struct {
	RowsProcessed int
	WordsCreated  int
	GroupsCreated int
	Skipped       int
	Errors        []string
}

// Importer reads vocabulary workbooks into the word and group stores.
type Importer struct {
	wordStore  store.WordStore
	groupStore store.GroupStore
	logger     *slog.Logger
}

// New creates an Importer backed by the given stores.
func New(wordStore store.WordStore, groupStore store.GroupStore, logger *slog.Logger) *Importer {
	if wordStore == nil {
		panic("wordStore cannot be nil") // ALLOW-PANIC: constructor validation
	}
	if groupStore == nil {
		panic("groupStore cannot be nil") // ALLOW-PANIC: constructor validation
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		wordStore:  wordStore,
		groupStore: groupStore,
		logger:     logger.With(slog.String("component", "importer")),
	}
}

// Import reads the first sheet of the workbook. A header row naming the
// columns is skipped; blank rows count as skipped, not as errors.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	groupIDs, err := i.existingGroups(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for idx, row := range rows {
		if idx == 0 && isHeaderRow(row) {
			continue
		}

		result.RowsProcessed++
		if err := i.importRow(ctx, row, groupIDs, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", idx+1, err))
		}
	}

	i.logger.Info("import finished",
		slog.Int("rows", result.RowsProcessed),
		slog.Int("words_created", result.WordsCreated),
		slog.Int("groups_created", result.GroupsCreated),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

func (i *Importer) importRow(ctx context.Context, row []string, groupIDs map[string]int64, result *Result) error {
	japanese := cell(row, colJapanese)
	romaji := cell(row, colRomaji)
	english := cell(row, colEnglish)
	groupName := cell(row, colGroup)

	if japanese == "" && romaji == "" && english == "" {
		result.Skipped++
		return nil
	}

	word, err := domain.NewWord(japanese, romaji, english)
	if err != nil {
		return err
	}

	if err := i.wordStore.Create(ctx, word); err != nil {
		return fmt.Errorf("failed to store word %q: %w", japanese, err)
	}
	result.WordsCreated++

	if groupName == "" {
		return nil
	}

	groupID, ok := groupIDs[strings.ToLower(groupName)]
	if !ok {
		group, err := domain.NewGroup(groupName)
		if err != nil {
			return err
		}
		if err := i.groupStore.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to create group %q: %w", groupName, err)
		}
		groupID = group.ID
		groupIDs[strings.ToLower(groupName)] = groupID
		result.GroupsCreated++
	}

	if err := i.groupStore.AddWord(ctx, groupID, word.ID); err != nil {
		return fmt.Errorf("failed to link word %q to group %q: %w", japanese, groupName, err)
	}

	return nil
}

// existingGroups maps lowercased group names to IDs so re-imports reuse
// groups instead of tripping the name-uniqueness constraint.
func (i *Importer) existingGroups(ctx context.Context) (map[string]int64, error) {
	total, err := i.groupStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count groups: %w", err)
	}

	groupIDs := make(map[string]int64, total)
	if total == 0 {
		return groupIDs, nil
	}

	groups, err := i.groupStore.List(ctx, 0, total)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	for _, group := range groups {
		groupIDs[strings.ToLower(group.Name)] = group.ID
	}
	return groupIDs, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isHeaderRow treats a first row as a header when it names the expected
// columns rather than carrying word data.
func isHeaderRow(row []string) bool {
	first := strings.ToLower(cell(row, colJapanese))
	return first == "japanese" || first == "word"
}
