package ui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/combo"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/format"
	"multiselect/internal/ui/input"
	inputtypes "multiselect/internal/ui/input/types"
	"multiselect/internal/ui/logic"
	"multiselect/internal/ui/views"
)

// E2EEnv enables the ready marker for the e2e harness
const E2EEnv = "MULTISELECT_E2E_TEST"

const statusTimeout = 3 * time.Second

// Result is what the user decided when the program exited
type Result struct {
	Confirmed bool
	Data      []any
	Text      string
}

// Model is the dropdown front-end. The control is only touched from Update,
// so its synchronous events can write model fields directly.
type Model struct {
	ctrl  *combo.MultiSelect
	sched *TeaScheduler

	width  int
	height int
	keys   inputtypes.KeyMap
	help   help.Model

	popupOpen      bool
	filterQuery    string
	rows           []int
	cursor         int
	viewportOffset int
	viewportHeight int
	inPagerMode    bool
	showReady      bool

	statusMessage string
	statusWarning bool
	statusSeq     int
	statusTimer   bool

	inputHandler *input.Handler
	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *PagerOps
	unsubscribe  []func()

	result Result
}

// NewModel creates a model around ctrl. ctrl should have been built with
// sched as its scheduler so deferred refreshes run inside Update.
func NewModel(ctrl *combo.MultiSelect, sched *TeaScheduler) *Model {
	if sched == nil {
		sched = NewTeaScheduler()
	}
	keys := inputtypes.DefaultKeyMap()
	m := &Model{
		ctrl:           ctrl,
		sched:          sched,
		keys:           keys,
		help:           help.New(),
		popupOpen:      true,
		viewportHeight: 10,
		showReady:      os.Getenv(E2EEnv) == "1",
		inputHandler:   input.New(keys),
		navigator:      logic.NewNavigator(),
		renderer:       views.NewRenderer(),
		helpRenderer:   NewHelpRenderer(),
		pager:          NewPagerOps(nil),
	}

	m.unsubscribe = append(m.unsubscribe,
		ctrl.OnSelectionChanged(func(values []any) {
			m.setStatus(fmt.Sprintf("%d selected", len(values)), false)
		}),
		ctrl.Subscribe(eventbus.EventSelectionLimitReached, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SelectionLimitReachedEvent); ok {
				m.setStatus(fmt.Sprintf("Selection limit of %d reached", ev.Limit), true)
			}
		}),
		ctrl.Subscribe(eventbus.EventItemSkipped, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ItemSkippedEvent); ok {
				m.setStatus(fmt.Sprintf("Skipped duplicate %q", ev.Text), true)
			}
		}),
	)

	m.syncRows()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Result returns the outcome once the program has exited
func (m *Model) Result() Result {
	return m.result
}

// Close drops the model's event subscriptions
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
}

// Init flushes refreshes queued before the program started
func (m *Model) Init() tea.Cmd {
	return m.sched.Cmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case flushMsg:
		n := m.sched.Flush()
		slog.Debug("Flushed deferred refreshes", "tasks", n)

	case pagerMsg:
		if msg.err != nil {
			slog.Error("Pager failed", "content", msg.what, "error", msg.err)
			m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err), true)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusWarning = false
		}

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	m.syncRows()
	cmds = append(cmds, m.sched.Cmd(), m.statusTick())
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		if m.showReady {
			return views.ReadyMarker + "\nLoading..."
		}
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		DisplayText:    m.ctrl.ShownText(),
		IsPlaceholder:  len(m.ctrl.GetCurrentIndexes()) == 0,
		PopupOpen:      m.popupOpen,
		Rows:           m.rowStates(),
		Cursor:         m.cursor,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		FilterQuery:    m.filterQuery,
		InputMode:      m.inputHandler.CurrentMode().String(),
		CheckedCount:   len(m.ctrl.GetCurrentIndexes()),
		TotalCount:     m.ctrl.Count(),
		StatusMessage:  m.statusMessage,
		StatusWarning:  m.statusWarning,
		HelpModel:      m.help,
		KeyMap:         m.keys,
		ShowReady:      m.showReady,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
		state.FilterPrompt = "Filter: "
	}
	return m.renderer.Render(state)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	slog.Debug("processAction", "action", action.Type())
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.UpdateState(m.cursor, m.viewportOffset, m.viewportHeight, len(m.rows))
		switch a.Direction {
		case "up":
			m.cursor, m.viewportOffset = m.navigator.Move(-1)
		case "down":
			m.cursor, m.viewportOffset = m.navigator.Move(1)
		case "pageup":
			m.cursor, m.viewportOffset = m.navigator.Move(-m.navigator.PageSize())
		case "pagedown":
			m.cursor, m.viewportOffset = m.navigator.Move(m.navigator.PageSize())
		case "home":
			m.cursor, m.viewportOffset = m.navigator.SetSelectedIndex(0)
		case "end":
			m.cursor, m.viewportOffset = m.navigator.SetSelectedIndex(m.navigator.GetMaxIndex())
		}

	case inputtypes.ToggleAction:
		if m.cursor < 0 || m.cursor >= len(m.rows) {
			return nil
		}
		row := m.rows[m.cursor]
		if row == input.SelectAllRow {
			m.ctrl.ToggleSelectAll()
			m.closeAfterSelect()
			return nil
		}
		changed, err := m.ctrl.ToggleItem(row)
		if err != nil {
			slog.Error("Toggle failed", "index", row, "error", err)
			return nil
		}
		if changed {
			m.closeAfterSelect()
		} else if !m.ctrl.IsItemEnabled(row) {
			text, _ := m.ctrl.ItemText(row)
			m.setStatus(fmt.Sprintf("%q is disabled", text), true)
		}

	case inputtypes.ToggleSelectAllAction:
		m.ctrl.ToggleSelectAll()
		m.closeAfterSelect()

	case inputtypes.SelectAllAction:
		if limit := m.ctrl.GetMaxSelectionCount(); limit > 0 && m.ctrl.Count() > limit {
			m.setStatus(fmt.Sprintf("Cannot select all: limit is %d", limit), true)
			return nil
		}
		m.ctrl.SelectAll()

	case inputtypes.DeselectAllAction:
		m.ctrl.ClearSelection()

	case inputtypes.InvertSelectionAction:
		unchecked := m.ctrl.Count() - len(m.ctrl.GetCurrentIndexes())
		if limit := m.ctrl.GetMaxSelectionCount(); limit > 0 && unchecked > limit {
			m.setStatus(fmt.Sprintf("Cannot invert: limit is %d", limit), true)
			return nil
		}
		m.ctrl.InvertSelection()

	case inputtypes.TogglePopupAction:
		m.popupOpen = !m.popupOpen

	case inputtypes.UpdateTextAction:
		m.setFilter(a.Text)

	case inputtypes.SubmitTextAction:
		m.setFilter(a.Text)

	case inputtypes.CancelTextAction, inputtypes.ClearFilterAction:
		m.setFilter("")

	case inputtypes.ToggleHelpAction:
		return m.showPager("help", m.helpRenderer.RenderHelpContent(m.keys))

	case inputtypes.ViewSelectionAction:
		content := m.helpRenderer.RenderSelectionContent(m.ctrl.GetCurrentOptions(), m.ctrl.CurrentText())
		return m.showPager("selection", content)

	case inputtypes.ConfirmAction:
		// A refresh may still be queued; the result reads the store directly
		m.result = Result{
			Confirmed: true,
			Data:      m.ctrl.CurrentData(),
			Text:      m.ctrl.CurrentText(),
		}
		slog.Info("Selection confirmed", "count", len(m.result.Data))
		return tea.Quit

	case inputtypes.QuitAction:
		slog.Info("Selection cancelled", "force", a.Force)
		m.result = Result{}
		return tea.Quit
	}
	return nil
}

// showPager returns a command that shows content using the ov pager
func (m *Model) showPager(what, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// closeAfterSelect closes the popup when the control asks for it. Filter mode
// keeps the list open so typing can continue.
func (m *Model) closeAfterSelect() {
	if m.ctrl.IsCloseOnSelect() && m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
		m.popupOpen = false
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Cursor:  m.cursor,
		Rows:    m.rows,
		Checked: len(m.ctrl.GetCurrentIndexes()),
		Open:    m.popupOpen,
		Query:   m.filterQuery,
	}
}

func (m *Model) setFilter(query string) {
	if query == m.filterQuery {
		return
	}
	m.filterQuery = query
	m.cursor = 0
	m.viewportOffset = 0
	m.syncRows()
}

// syncRows rebuilds the visible rows from the control and the filter
func (m *Model) syncRows() {
	var rows []int
	if m.filterQuery == "" {
		if m.ctrl.IsSelectAllEnabled() && m.ctrl.Count() > 0 {
			rows = append(rows, input.SelectAllRow)
		}
		for i := 0; i < m.ctrl.Count(); i++ {
			rows = append(rows, i)
		}
	} else {
		rows = m.ctrl.MatchIndexes(m.filterQuery, format.MatchContains)
	}
	m.rows = rows
	m.navigator.UpdateState(m.cursor, m.viewportOffset, m.viewportHeight, len(rows))
	m.cursor, m.viewportOffset = m.navigator.SetSelectedIndex(m.cursor)
}

func (m *Model) rowStates() []views.RowState {
	out := make([]views.RowState, 0, len(m.rows))
	for _, row := range m.rows {
		if row == input.SelectAllRow {
			out = append(out, views.RowState{
				Label:     m.ctrl.GetSelectAllText(),
				State:     m.ctrl.SelectAllState(),
				Enabled:   true,
				SelectAll: true,
			})
			continue
		}
		text, _ := m.ctrl.ItemText(row)
		state := domain.Unchecked
		if m.ctrl.IsItemChecked(row) {
			state = domain.Checked
		}
		out = append(out, views.RowState{
			Label:   text,
			State:   state,
			Enabled: m.ctrl.IsItemEnabled(row),
		})
	}
	return out
}

// updateViewportHeight fits the popup between the field and the footer
func (m *Model) updateViewportHeight() {
	// Title, field box, popup border, filter, status, help and padding
	const chrome = 14
	m.viewportHeight = m.height - chrome
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
}

func (m *Model) setStatus(msg string, warning bool) {
	m.statusMessage = msg
	m.statusWarning = warning
	m.statusSeq++
	m.statusTimer = true
}

// statusTick schedules clearing of the status message set during this update
func (m *Model) statusTick() tea.Cmd {
	if !m.statusTimer {
		return nil
	}
	m.statusTimer = false
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
