package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/toybox/internal/calc"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m calcModel, msgs ...tea.Msg) calcModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		cm, ok := next.(calcModel)
		require.True(t, ok, "expected calcModel, got %T", next)
		m = cm
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// cellCenter returns a terminal cell inside button (row, col).
func cellCenter(pad [][]calc.Button, row, col int) (int, int) {
	left := 0
	for c := 0; c < col; c++ {
		left += spanWidth(pad[row][c].Span) + cellGap
	}
	return left + spanWidth(pad[row][col].Span)/2, gridTop + row*2
}

func TestKeyboardArithmetic(t *testing.T) {
	m := newCalcModel(AppConfig{})
	m = send(t, m, runes("1"), runes("2"), runes("+"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "15", m.calc.Display())

	// Equals clears the accumulator, so the next operator works on 0:
	// a one-operand accumulator, not an expression evaluator.
	m = send(t, m, runes("*"), runes("2"), runes("="))
	assert.Equal(t, "0", m.calc.Display())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "0", m.calc.Display())
}

func TestKeyboardChainedOperators(t *testing.T) {
	m := newCalcModel(AppConfig{})
	m = send(t, m, runes("1"), runes("2"), runes("+"), runes("3"), runes("*"), runes("2"), runes("="))
	assert.Equal(t, "30", m.calc.Display())
}

func TestKeyboardDivideByZeroShowsError(t *testing.T) {
	m := newCalcModel(AppConfig{})
	m = send(t, m, runes("7"), runes("/"), runes("0"), runes("="))
	assert.Equal(t, "Error", m.calc.Display())
	assert.Contains(t, m.View(), "Error")
}

func TestQuitKey(t *testing.T) {
	m := newCalcModel(AppConfig{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFocusAndSpacePress(t *testing.T) {
	m := newCalcModel(AppConfig{})
	// Start on "C"; move down one row to "7".
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.row)
	assert.Equal(t, 0, m.col)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "7", m.calc.Display())
	assert.Equal(t, "7", m.last)

	// Focus clamps at the grid edges.
	for i := 0; i < 10; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.pad)-1, m.row)
	assert.Equal(t, len(m.pad[m.row])-1, m.col)
}

func TestMouseClicksPressButtons(t *testing.T) {
	m := newCalcModel(AppConfig{Mouse: true})
	pad := m.pad

	press := func(label string) {
		t.Helper()
		for r, row := range pad {
			for c, b := range row {
				if b.Label == label {
					x, y := cellCenter(pad, r, c)
					m = send(t, m, click(x, y))
					return
				}
			}
		}
		t.Fatalf("no button %q", label)
	}

	press("9")
	press("×")
	press("0")
	press("=")
	assert.Equal(t, "0", m.calc.Display())

	press("C")
	press("4")
	press(".")
	press("5")
	press("±")
	assert.Equal(t, "-4.5", m.calc.Display())
}

func TestMouseSpanTwoButton(t *testing.T) {
	m := newCalcModel(AppConfig{Mouse: true})
	last := len(m.pad) - 1
	require.Equal(t, "0", m.pad[last][0].Label)
	require.Equal(t, 2, m.pad[last][0].Span)

	m = send(t, m, runes("5"))
	// Right half of the wide zero button.
	x := spanWidth(2) - 1
	m = send(t, m, click(x, gridTop+last*2))
	assert.Equal(t, "50", m.calc.Display())
}

func TestMouseMissesAreIgnored(t *testing.T) {
	m := newCalcModel(AppConfig{Mouse: true})
	m = send(t, m,
		click(0, 0),
		click(0, gridTop+1),
		click(cellWidth, gridTop),
		click(gridWidth()+5, gridTop),
		tea.MouseMsg{X: 1, Y: gridTop + 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.Equal(t, "0", m.calc.Display())
}

func TestViewGeometryMatchesHitTesting(t *testing.T) {
	m := newCalcModel(AppConfig{Version: "1.0.0"})
	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), gridTop+2*(len(m.pad)-1))

	assert.Contains(t, lines[0], "CALCULATOR")
	assert.Contains(t, lines[3], "0")
	for r, row := range m.pad {
		line := lines[gridTop+r*2]
		for _, b := range row {
			assert.Contains(t, line, b.Label, "row %d", r)
		}
		assert.Equal(t, gridWidth(), lipgloss.Width(line), "row %d", r)
	}
	assert.Equal(t, gridWidth(), lipgloss.Width(lines[2]))
}

func TestViewShowsPendingOperation(t *testing.T) {
	m := newCalcModel(AppConfig{})
	m = send(t, m, runes("8"), runes("-"))
	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[5], "8 -")
}

func TestFitDisplay(t *testing.T) {
	assert.Equal(t, "123", fitDisplay("123", 10))
	assert.Equal(t, "…6789", fitDisplay("123456789", 5))
	assert.Equal(t, 5, len([]rune(fitDisplay("123456789", 5))))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Enter", keyName(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "Escape", keyName(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, "+", keyName(runes("+")))
	assert.Equal(t, "", keyName(tea.KeyMsg{Type: tea.KeyTab}))
}
