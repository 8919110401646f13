package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"

	"github.com/colonyops/multipaste/internal/core/clip"
	"github.com/colonyops/multipaste/internal/core/styles"
)

// cellRow is one visible entry of the cell list. matched holds byte offsets
// of the fuzzy-matched characters within the cell name.
type cellRow struct {
	index   int
	matched map[int]bool
}

// cellSource exposes cell names and text to the fuzzy matcher.
type cellSource []clip.Cell

func (s cellSource) String(i int) string { return s[i].Name + "\n" + s[i].Text }
func (s cellSource) Len() int            { return len(s) }

// filterCells returns the rows to display for query. An empty query keeps
// every cell in order; otherwise rows are ranked by match score.
func filterCells(cells []clip.Cell, query string) []cellRow {
	query = strings.TrimSpace(query)
	if query == "" {
		rows := make([]cellRow, len(cells))
		for i := range cells {
			rows[i] = cellRow{index: i}
		}
		return rows
	}

	matches := fuzzy.FindFrom(query, cellSource(cells))
	rows := make([]cellRow, 0, len(matches))
	for _, match := range matches {
		nameLen := len(cells[match.Index].Name)
		matched := make(map[int]bool, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			if idx < nameLen {
				matched[idx] = true
			}
		}
		rows = append(rows, cellRow{index: match.Index, matched: matched})
	}
	return rows
}

// highlightName renders name in style with fuzzy-matched characters
// emphasized.
func highlightName(name string, matched map[int]bool, style lipgloss.Style) string {
	if len(matched) == 0 {
		return style.Render(name)
	}

	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
	}
	for i, r := range name {
		if matched[i] {
			flush()
			b.WriteString(styles.CellMatchStyle.Render(string(r)))
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}
