package views

import (
	"fmt"
	"strings"
)

// PopupRenderer renders the dropdown list
type PopupRenderer struct {
	styles *Styles
	rows   *RowRenderer
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		rows:   NewRowRenderer(styles),
	}
}

// RenderPopup renders the visible window of rows inside a bordered box
func (pr *PopupRenderer) RenderPopup(state ViewState) string {
	innerWidth := state.Width - 8
	if innerWidth < 10 {
		innerWidth = 10
	}

	var b strings.Builder
	if len(state.Rows) == 0 {
		if state.FilterQuery != "" {
			b.WriteString(pr.styles.Dim.Render(fmt.Sprintf("No items match %q", state.FilterQuery)))
		} else {
			b.WriteString(pr.styles.Dim.Render("No items"))
		}
		return pr.styles.Popup.Width(innerWidth).Render(b.String())
	}

	start, end := visibleWindow(len(state.Rows), state.ViewportOffset, state.ViewportHeight)
	if start > 0 {
		b.WriteString(pr.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(pr.rows.RenderRow(state.Rows[i], i == state.Cursor, innerWidth))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(state.Rows) {
		b.WriteString("\n")
		b.WriteString(pr.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Rows)-end)))
	}
	return pr.styles.Popup.Width(innerWidth).Render(b.String())
}

// visibleWindow clamps the viewport to the row count
func visibleWindow(total, offset, height int) (int, int) {
	if height <= 0 || height > total {
		height = total
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + height
}
