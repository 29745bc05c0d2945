package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(c *Calculator, keys ...string) {
	for _, k := range keys {
		if a, ok := KeyAction(k); ok {
			c.Dispatch(a)
		}
	}
}

func TestAddition(t *testing.T) {
	c := New()
	press(c, "1", "+", "2", "=")
	require.Equal(t, "3", c.Display())
	assert.Equal(t, OpNone, c.Pending())
	assert.Equal(t, 0.0, c.Stored())
	assert.True(t, c.Waiting())
}

func TestChainedDivideByZeroYieldsZero(t *testing.T) {
	c := New()
	press(c, "5", "/", "0", "+")
	require.Equal(t, "0", c.Display())
	assert.Equal(t, OpAdd, c.Pending())
	assert.Equal(t, 0.0, c.Stored())

	press(c, "1", "=")
	assert.Equal(t, "1", c.Display())
}

func TestEqualsDivideByZeroShowsError(t *testing.T) {
	c := New()
	press(c, "5", "/", "0", "=")
	require.Equal(t, "Error", c.Display())
	assert.Equal(t, OpDivide, c.Pending(), "error leaves the pending operator alone")
	assert.Equal(t, 5.0, c.Stored())
}

func TestDigitAfterErrorStartsFresh(t *testing.T) {
	c := New()
	press(c, "5", "/", "0", "=", "7")
	assert.Equal(t, "7", c.Display())

	press(c, "C", "5", "/", "0", "=", ".")
	assert.Equal(t, "0.", c.Display())
}

func TestSecondDecimalPointIgnored(t *testing.T) {
	c := New()
	press(c, "1", ".", "2", ".")
	assert.Equal(t, "1.2", c.Display())
}

func TestDotWhileWaitingStartsAtZero(t *testing.T) {
	c := New()
	press(c, ".", "5")
	assert.Equal(t, "0.5", c.Display())

	press(c, "+", ".")
	assert.Equal(t, "0.", c.Display())
}

func TestLeadingZeroReplaced(t *testing.T) {
	c := New()
	press(c, "0", "0", "7")
	assert.Equal(t, "7", c.Display())
}

func TestClearResetsEverything(t *testing.T) {
	c := New()
	press(c, "9", "*", "3")
	press(c, "Escape")
	assert.Equal(t, "0", c.Display())
	assert.Equal(t, 0.0, c.Stored())
	assert.Equal(t, OpNone, c.Pending())
	assert.True(t, c.Waiting())
}

func TestOperatorUsesPreviousOperator(t *testing.T) {
	c := New()
	press(c, "2", "+", "3", "*")
	require.Equal(t, "5", c.Display())
	assert.Equal(t, OpMultiply, c.Pending())

	press(c, "4", "=")
	assert.Equal(t, "20", c.Display(), "no precedence: (2+3)*4")
}

func TestRepeatedOperatorOnlySwapsPending(t *testing.T) {
	c := New()
	press(c, "8", "+", "-", "×", "÷")
	assert.Equal(t, "8", c.Display())
	assert.Equal(t, OpDivide, c.Pending())

	press(c, "2", "=")
	assert.Equal(t, "4", c.Display())
}

func TestNegateAndPercent(t *testing.T) {
	c := New()
	press(c, "5")
	c.Dispatch(Negate)
	assert.Equal(t, "-5", c.Display())
	c.Dispatch(Percent)
	assert.Equal(t, "-0.05", c.Display())

	c.Dispatch(Clear)
	press(c, "5", "/", "0", "=")
	c.Dispatch(Negate)
	assert.Equal(t, "Error", c.Display(), "unparsable display is left alone")
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		3:         "3",
		-12:       "-12",
		0.5:       "0.5",
		1e21:      "1000000000000000000000",
		1.0 / 3.0: "0.3333333333333333",
		2.5e-7:    "0.00000025",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%v)", in)
	}

	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", FormatNumber(a+b))
}

func TestKeyActionIgnoresUnknownKeys(t *testing.T) {
	for _, k := range []string{"x", "", "Tab", "10"} {
		_, ok := KeyAction(k)
		assert.False(t, ok, "key %q", k)
	}
}

func TestKeypadCoversEveryAction(t *testing.T) {
	seen := map[ActionKind]bool{}
	digits := map[int]bool{}
	for _, row := range Keypad() {
		width := 0
		for _, b := range row {
			seen[b.Action.Kind] = true
			if b.Action.Kind == ActDigit {
				digits[b.Action.Digit] = true
			}
			width += b.Span
		}
		require.Equal(t, 4, width, "every row spans four columns")
	}
	for _, k := range []ActionKind{ActDigit, ActDot, ActOperator, ActEquals, ActClear, ActNegate, ActPercent} {
		assert.True(t, seen[k], "missing action kind %d", k)
	}
	assert.Len(t, digits, 10)
}
