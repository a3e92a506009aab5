package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"multiselect/internal/domain"
	"multiselect/internal/format"
	"multiselect/internal/ui/input/types"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help and selection content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// RenderHelpContent generates help content from the key map for the pager
func (r *HelpRenderer) RenderHelpContent(keys types.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("multiselect Help"))
	help.WriteString("\n")

	r.writeSection(&help, "Navigation", [][2]string{
		{keys.Up.Help().Key + ", " + keys.Down.Help().Key, "Move up/down"},
		{"pgup/pgdn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
	})
	r.writeSection(&help, "Selection", [][2]string{
		{keys.Toggle.Help().Key, "Toggle item (on Select All: check or uncheck everything)"},
		{keys.SelectAll.Help().Key, "Check all items"},
		{keys.SelectNone.Help().Key, "Uncheck all items"},
		{keys.Invert.Help().Key, "Invert selection"},
	})
	r.writeSection(&help, "Filter", [][2]string{
		{keys.Filter.Help().Key, "Filter items by text"},
		{"tab", "Toggle item while filtering"},
		{"esc", "Clear filter / close list"},
	})
	r.writeSection(&help, "Other", [][2]string{
		{keys.Popup.Help().Key, "Open/close the list"},
		{keys.ViewChecked.Help().Key, "Show full selection"},
		{keys.Confirm.Help().Key, "Confirm and print the selection"},
		{keys.Help.Help().Key, "Show this help"},
		{keys.Quit.Help().Key + ", ctrl+c", "Cancel"},
	})

	return strings.TrimRight(help.String(), "\n")
}

func (r *HelpRenderer) writeSection(b *strings.Builder, name string, rows [][2]string) {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}
	b.WriteString(r.section.Render(name))
	b.WriteString("\n")
	for _, row := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(row[0])+2)
		b.WriteString(fmt.Sprintf("  %s%s%s\n", r.key.Render(row[0]), pad, r.desc.Render(row[1])))
	}
	b.WriteString("\n")
}

// RenderSelectionContent lists every checked option for the pager
func (r *HelpRenderer) RenderSelectionContent(options []domain.Option, joined string) string {
	var b strings.Builder
	b.WriteString(r.title.Render(fmt.Sprintf("Selection (%d)", len(options))))
	b.WriteString("\n")
	if len(options) == 0 {
		b.WriteString(r.desc.Render("Nothing selected"))
		return b.String()
	}
	for _, opt := range options {
		data := format.Stringify(opt.Data)
		if data == opt.Text {
			b.WriteString(fmt.Sprintf("  %s\n", r.key.Render(opt.Text)))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render(opt.Text), r.desc.Render(data)))
	}
	b.WriteString("\n")
	b.WriteString(r.section.Render("Joined"))
	b.WriteString("\n")
	b.WriteString(joined)
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// SetProgram sets the program whose terminal is borrowed
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
