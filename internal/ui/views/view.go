package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ReadyMarker is printed in the first frame when the e2e harness asks for it
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	DisplayText    string
	IsPlaceholder  bool
	PopupOpen      bool
	Rows           []RowState
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	FilterQuery    string
	InputMode      string
	TextInput      string
	FilterPrompt   string
	CheckedCount   int
	TotalCount     int
	StatusMessage  string
	StatusWarning  bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
	ShowReady      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.ShowReady {
		content.WriteString(ReadyMarker)
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Title.Render("multiselect"))
	content.WriteString("\n")

	content.WriteString(r.renderField(state))
	content.WriteString("\n")

	if state.PopupOpen {
		content.WriteString(r.popupRender.RenderPopup(state))
		content.WriteString("\n")
	}

	if line := r.renderFilterLine(state); line != "" {
		content.WriteString(line)
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")

	if state.KeyMap != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderField(state ViewState) string {
	arrow := "▾"
	if state.PopupOpen {
		arrow = "▴"
	}
	// Border, padding, arrow and outer margin
	avail := state.Width - 12
	if avail < 5 {
		avail = 5
	}
	text := ansi.Truncate(state.DisplayText, avail, "…")
	if state.IsPlaceholder || text == "" {
		text = r.styles.Placeholder.Render(text)
	}

	style := r.styles.Field
	if state.PopupOpen {
		style = r.styles.FieldFocused
	}
	pad := avail - lipgloss.Width(text)
	if pad < 0 {
		pad = 0
	}
	return style.Render(text + strings.Repeat(" ", pad) + " " + arrow)
}

func (r *Renderer) renderFilterLine(state ViewState) string {
	if state.InputMode == "filter" {
		return r.styles.Filter.Render(state.FilterPrompt) + state.TextInput
	}
	if state.FilterQuery != "" {
		return r.styles.Filter.Render("[Filter: " + state.FilterQuery + "]")
	}
	return ""
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return r.styles.Status.Render(countLine(state.CheckedCount, state.TotalCount))
	}
	if state.StatusWarning {
		return r.styles.Status.Render(r.styles.StatusWarning.Render(state.StatusMessage))
	}
	return r.styles.Status.Render(state.StatusMessage)
}

func countLine(checked, total int) string {
	return fmt.Sprintf("%d of %d selected", checked, total)
}
