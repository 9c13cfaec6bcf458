package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/grbtype/typedesc"
	"github.com/wippyai/grbtype/witabi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	builtinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	freedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func rowStyle(t *typedesc.Type) lipgloss.Style {
	switch {
	case !t.Live():
		return freedStyle
	case t.Class() == typedesc.UserDefined:
		return userStyle
	default:
		return builtinStyle
	}
}

type modelState int

const (
	stateBrowse modelState = iota
	stateDefine
)

// interactiveModel lists every descriptor it has seen. Freed user types stay
// in the list as stale references, so releasing them again can be tried.
type interactiveModel struct {
	err      error
	store    *typedesc.Store
	rows     []*typedesc.Type
	input    textinput.Model
	status   string
	selected int
	state    modelState
}

func newInteractiveModel(store *typedesc.Store) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "name:size"
	ti.Prompt = "define: "
	ti.Width = 40

	m := &interactiveModel{
		store: store,
		input: ti,
		state: stateBrowse,
	}
	m.rows = append(m.rows, typedesc.Builtins()...)
	m.rows = append(m.rows, store.Types()...)
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateDefine {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateDefine {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.input.Blur()
			m.input.Reset()
			return m, nil
		case "enter":
			m.define(m.input.Value())
			m.state = stateBrowse
			m.input.Blur()
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case "n":
		m.state = stateDefine
		m.err = nil
		m.status = ""
		return m, m.input.Focus()

	case "f", "enter":
		m.release()

	case "c":
		m.check()
	}

	return m, nil
}

func (m *interactiveModel) define(value string) {
	d, err := parseDef(value)
	if err != nil {
		m.err = err
		return
	}
	t, err := m.store.New(d.name, d.size, nil)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.rows = append(m.rows, t)
	m.selected = len(m.rows) - 1
	m.status = "defined " + t.String()
}

func (m *interactiveModel) release() {
	if len(m.rows) == 0 {
		return
	}
	before := m.store.Stats().Frees
	handle := m.rows[m.selected]
	name := handle.Name()
	typedesc.Free(&handle)

	m.err = nil
	switch freed := m.store.Stats().Frees - before; {
	case freed > 0:
		m.status = fmt.Sprintf("freed %s", name)
	case m.rows[m.selected].Class() == typedesc.Builtin:
		m.status = fmt.Sprintf("released handle to built-in %s, storage kept", name)
	default:
		m.status = fmt.Sprintf("%s already freed, nothing to do", name)
	}
}

func (m *interactiveModel) check() {
	if len(m.rows) == 0 {
		return
	}
	if err := typedesc.Check(m.rows[m.selected]); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = m.rows[m.selected].Name() + " is valid"
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GraphBLAS Types"))
	st := m.store.Stats()
	b.WriteString(helpStyle.Render(fmt.Sprintf(" %d live, %d allocated, %d freed", st.Live(), st.Allocs, st.Frees)))
	b.WriteString("\n\n")

	for i, t := range m.rows {
		desc, err := witabi.Describe(t)
		if err != nil {
			desc = "-"
		}
		line := fmt.Sprintf("%-10s %-13s %4d  %-8s %s", t.Name(), t.Class(), t.Size(), t.Magic(), desc)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + rowStyle(t).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.state == stateDefine {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter define • esc back"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(resultStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select • f free • c check • n new type • q quit"))
	return b.String()
}

func runInteractive(store *typedesc.Store, defs []typeDef) error {
	for _, d := range defs {
		if _, err := store.New(d.name, d.size, nil); err != nil {
			return fmt.Errorf("define %s: %w", d.name, err)
		}
	}
	p := tea.NewProgram(newInteractiveModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
