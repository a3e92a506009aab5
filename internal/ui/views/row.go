package views

import (
	"github.com/charmbracelet/x/ansi"

	"multiselect/internal/domain"
)

// RowState describes one popup row
type RowState struct {
	Label     string
	State     domain.CheckState
	Enabled   bool
	SelectAll bool
}

// Checkbox returns the glyph for a check state
func Checkbox(s domain.CheckState) string {
	switch s {
	case domain.Checked:
		return "[x]"
	case domain.PartiallyChecked:
		return "[-]"
	default:
		return "[ ]"
	}
}

// RowRenderer renders popup rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RenderRow renders a row clipped to width cells
func (rr *RowRenderer) RenderRow(row RowState, isCursor bool, width int) string {
	indicator := "  "
	if isCursor {
		indicator = "> "
	}

	box := Checkbox(row.State)
	switch row.State {
	case domain.Checked:
		box = rr.styles.Checked.Render(box)
	case domain.PartiallyChecked:
		box = rr.styles.Partial.Render(box)
	}

	label := row.Label
	if width > 0 {
		label = ansi.Truncate(label, max(width-len(indicator)-4, 1), "…")
	}
	switch {
	case row.SelectAll:
		label = rr.styles.SelectAll.Render(label)
	case !row.Enabled:
		label = rr.styles.Dim.Render(label)
	}

	line := indicator + box + " " + label
	if isCursor {
		return rr.styles.HighlightBg.Render(line)
	}
	return line
}
