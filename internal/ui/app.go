// Package ui is the terminal calculator: a bubbletea program over
// calc.Calculator with a clickable keypad.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/toybox/internal/calc"
	"github.com/appengine-ltd/toybox/internal/ctxlog"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Mouse     bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("calculator starting", "mouse", a.cfg.Mouse)
	final, err := tea.NewProgram(newCalcModel(a.cfg), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("calculator stopped", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("calculator: %w", err)
	}
	if m, ok := final.(calcModel); ok {
		log.Info("calculator closed", "display", m.calc.Display())
	}
	return nil
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	displayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1).
			Align(lipgloss.Right)
	buttonBase = lipgloss.NewStyle().Align(lipgloss.Center)
)

type calcModel struct {
	cfg  AppConfig
	calc *calc.Calculator
	keys keyMap
	pad  [][]calc.Button

	row int
	col int
	// last is the label of the most recently pressed button.
	last string
}

func newCalcModel(cfg AppConfig) calcModel {
	return calcModel{
		cfg:  cfg,
		calc: calc.New(),
		keys: defaultKeyMap(),
		pad:  calc.Keypad(),
	}
}

func (m calcModel) Init() tea.Cmd {
	return nil
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row, col, ok := buttonAt(m.pad, msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.row, m.col = row, col
		m.press(m.pad[row][col])
		return m, nil
	}
	return m, nil
}

func (m calcModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Press):
		m.press(m.pad[m.row][m.col])
		return m, nil
	}

	if a, ok := calc.KeyAction(keyName(msg)); ok {
		m.calc.Dispatch(a)
		m.last = labelFor(m.pad, a)
	}
	return m, nil
}

func (m *calcModel) press(b calc.Button) {
	m.calc.Dispatch(b.Action)
	m.last = b.Label
}

func (m *calcModel) moveFocus(dRow, dCol int) {
	m.row = clampInt(m.row+dRow, 0, len(m.pad)-1)
	m.col = clampInt(m.col+dCol, 0, len(m.pad[m.row])-1)
}

// keyName turns a bubbletea key into the names calc.KeyAction expects.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return ""
}

func labelFor(pad [][]calc.Button, a calc.Action) string {
	for _, row := range pad {
		for _, b := range row {
			if b.Action == a {
				return b.Label
			}
		}
	}
	return ""
}

func (m calcModel) View() string {
	lines := make([]string, 0, gridTop+2*len(m.pad)+2)

	title := brightGreen.Render("CALCULATOR")
	if m.cfg.Version != "" {
		title += dimGreen.Render(fmt.Sprintf("  v%s", m.cfg.Version))
	}
	lines = append(lines, title, "")

	inner := gridWidth() - 2
	text := fitDisplay(m.calc.Display(), inner-2)
	lines = append(lines, strings.Split(displayBox.Width(inner).Render(text), "\n")...)

	memo := ""
	if op := m.calc.Pending(); op != calc.OpNone {
		memo = calc.FormatNumber(m.calc.Stored()) + " " + op.Symbol()
	}
	lines = append(lines, dimGreen.Render(memo), "")

	for r, row := range m.pad {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			cells = append(cells, m.renderButton(b, r == m.row && c == m.col))
		}
		lines = append(lines, strings.Join(cells, strings.Repeat(" ", cellGap)))
		if r < len(m.pad)-1 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "", dimGreen.Render(m.keys.helpLine()))
	return strings.Join(lines, "\n")
}

func (m calcModel) renderButton(b calc.Button, focused bool) string {
	style := buttonBase.Width(spanWidth(b.Span))
	switch b.Class {
	case calc.ClassOperation, calc.ClassEquals:
		style = style.Inherit(amber)
	case calc.ClassClear, calc.ClassFunction:
		style = style.Inherit(green)
	default:
		style = style.Inherit(brightGreen)
	}
	if b.Label == m.last {
		style = style.Bold(true)
	}
	if focused {
		style = style.Reverse(true)
	}
	return style.Render(b.Label)
}

// fitDisplay keeps the least significant end of long numbers visible.
func fitDisplay(s string, width int) string {
	r := []rune(s)
	if width < 2 || len(r) <= width {
		return s
	}
	return "…" + string(r[len(r)-width+1:])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
