package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/ui/input/types"
)

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Any key other than g cancels a pending gg
	if msg.String() != "g" {
		m.lastKeyWasG = false
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true

	case key.Matches(msg, m.keys.Popup):
		return []types.Action{types.TogglePopupAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.ViewChecked):
		return []types.Action{types.ViewSelectionAction{}}, true

	case key.Matches(msg, m.keys.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.SelectNone):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.DeselectAllAction{}}, true

	case key.Matches(msg, m.keys.Invert):
		return []types.Action{types.InvertSelectionAction{}}, true

	case key.Matches(msg, m.keys.Filter):
		return m.whenOpen(ctx, types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}), true
	}

	// Remaining keys act on the popup list
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.whenOpen(ctx, types.NavigateAction{Direction: "up"}), true

	case key.Matches(msg, m.keys.Down):
		return m.whenOpen(ctx, types.NavigateAction{Direction: "down"}), true

	case key.Matches(msg, m.keys.PageUp):
		return m.whenOpen(ctx, types.NavigateAction{Direction: "pageup"}), true

	case key.Matches(msg, m.keys.PageDown):
		return m.whenOpen(ctx, types.NavigateAction{Direction: "pagedown"}), true

	case key.Matches(msg, m.keys.Toggle):
		if !ctx.PopupOpen() || ctx.TotalRows() == 0 {
			return nil, true
		}
		if ctx.IsOnSelectAll() {
			return []types.Action{types.ToggleSelectAllAction{}}, true
		}
		return []types.Action{types.ToggleAction{}}, true
	}

	switch msg.String() {
	case "home":
		return m.whenOpen(ctx, types.NavigateAction{Direction: "home"}), true

	case "end", "G":
		return m.whenOpen(ctx, types.NavigateAction{Direction: "end"}), true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return m.whenOpen(ctx, types.NavigateAction{Direction: "home"}), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "esc":
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		if ctx.PopupOpen() {
			return []types.Action{types.TogglePopupAction{}}, true
		}
		return nil, true
	}

	return nil, false
}

// whenOpen returns action, first opening the popup if it is closed
func (m *NormalMode) whenOpen(ctx types.Context, action types.Action) []types.Action {
	if !ctx.PopupOpen() {
		return []types.Action{types.TogglePopupAction{}}
	}
	return []types.Action{action}
}
