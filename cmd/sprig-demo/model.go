package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/focus"
	"github.com/iw2rmb/sprig/input"
	"github.com/iw2rmb/sprig/listbox"
	"github.com/iw2rmb/sprig/logview"
)

const fieldsTop = 2 // title and a blank row

type globalKeys struct {
	Quit key.Binding
	Help key.Binding
	Next key.Binding
}

func defaultGlobalKeys() globalKeys {
	return globalKeys{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Next: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus a field")),
	}
}

func (k globalKeys) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Help, k.Quit} }

func (k globalKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Help, k.Quit}} }

// formState is written by widget signal handlers.
type formState struct {
	values   map[string]string
	selected string
}

type model struct {
	cfg    FormConfig
	scope  *focus.Scope
	inputs []input.Model
	list   listbox.Model
	logs   logview.Model
	help   help.Model
	keys   globalKeys
	state  *formState
	log    *slog.Logger

	labelWidth int
}

func newModel(cfg FormConfig, logs *logview.Log, logger *slog.Logger) (model, error) {
	shape, err := buffer.ParseShape(cfg.Cursor.Shape)
	if err != nil {
		return model{}, err
	}

	m := model{
		cfg:   cfg,
		scope: focus.NewScope(),
		logs:  logview.New(logs, logview.DefaultStyle()).SetSize(60, cfg.Log.Height),
		help:  help.New(),
		keys:  defaultGlobalKeys(),
		state: &formState{values: make(map[string]string)},
		log:   logger,
	}
	for _, f := range cfg.Fields {
		m.labelWidth = max(m.labelWidth, lipgloss.Width(f.Label))
	}

	state := m.state
	for _, f := range cfg.Fields {
		label := f.Label
		m.inputs = append(m.inputs, input.New(input.Config{
			Text:          f.Text,
			Placeholder:   f.Placeholder,
			Padding:       1,
			Width:         f.Width,
			Shape:         shape,
			CursorBold:    cfg.Cursor.Bold,
			Blink:         cfg.Cursor.Blink,
			BlinkInterval: cfg.Cursor.blinkInterval(),
			Style:         input.DefaultStyle(),
			Scope:         m.scope,
			Logger:        logger.With(slog.String("field", label)),
			OnSubmit: func(text string) {
				state.values[label] = text
				logger.Info("submitted", slog.String("field", label), slog.String("value", text))
			},
		}))
	}

	m.list = listbox.New(listbox.Config{
		Items:       cfg.List.Items,
		Height:      cfg.List.Height,
		Title:       cfg.List.Title,
		ShowIndices: true,
		Style:       listbox.DefaultStyle(),
		Scope:       m.scope,
		Logger:      logger,
		OnSelect: func(s listbox.Selection) {
			state.selected = s.Item
			logger.Info("selected", slog.Int("index", s.Index), slog.String("item", s.Item))
		},
	})

	m.scope.Changed.Connect(func(c focus.Change) {
		logger.Debug("focus moved", slog.Int("from", int(c.Previous)), slog.Int("to", int(c.Current)))
	})
	return m, nil
}

func (m model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for _, in := range m.inputs {
		cmds = append(cmds, in.Init())
	}
	m.log.Info("ready", slog.Int("fields", len(m.inputs)))
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logs = m.logs.SetSize(msg.Width, m.cfg.Log.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case logview.AppendedMsg:
		m.logs, _ = m.logs.Update(msg)
		return m, nil
	}

	// Blink ticks and anything else go to every input; each ignores what is
	// not addressed to it.
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	for i, in := range m.inputs {
		if in.Focused() {
			var cmd tea.Cmd
			m.inputs[i], cmd = in.Update(msg)
			return m, cmd
		}
	}
	if m.list.Focused() {
		m.list, _ = m.list.Update(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case msg.Type == tea.KeyTab:
		m.scope.Next()
	case msg.Type == tea.KeyShiftTab:
		m.scope.Prev()
	}
	return m, nil
}

// updateMouse translates screen coordinates to each widget's own origin.
func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		if msg.Y != fieldsTop+i {
			continue
		}
		local := msg
		local.X -= m.labelWidth + 1
		local.Y = 0
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(local)
		cmds = append(cmds, cmd)
	}

	local := msg
	local.Y -= m.listTop()
	m.list, _ = m.list.Update(local)

	if msg.Y >= m.logsTop() {
		local := msg
		local.Y -= m.logsTop()
		m.logs, _ = m.logs.Update(local)
	}
	return m, tea.Batch(cmds...)
}

func (m model) listTop() int { return fieldsTop + len(m.inputs) + 1 }

// logsTop skips the list, a blank row and the summary row.
func (m model) logsTop() int { return m.listTop() + lipgloss.Height(m.list.View()) + 2 }

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(m.cfg.Title))
	sb.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Width(m.labelWidth)
	for i, in := range m.inputs {
		sb.WriteString(labelStyle.Render(m.cfg.Fields[i].Label))
		sb.WriteByte(' ')
		sb.WriteString(in.View())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	sb.WriteString(m.list.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.summary())
	sb.WriteByte('\n')
	sb.WriteString(m.logs.View())
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.activeKeys()))
	return sb.String()
}

func (m model) summary() string {
	if len(m.state.values) == 0 && m.state.selected == "" {
		return "nothing submitted yet"
	}
	labels := make([]string, 0, len(m.state.values))
	for l := range m.state.values {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels)+1)
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l, m.state.values[l]))
	}
	if m.state.selected != "" {
		parts = append(parts, fmt.Sprintf("%s=%q", m.cfg.List.Title, m.state.selected))
	}
	return strings.Join(parts, "  ")
}

func (m model) activeKeys() help.KeyMap {
	for _, in := range m.inputs {
		if in.Focused() {
			return input.DefaultKeyMap()
		}
	}
	if m.list.Focused() {
		return listbox.DefaultKeyMap()
	}
	return m.keys
}
