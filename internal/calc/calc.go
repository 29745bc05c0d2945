// Package calc is a pocket-calculator accumulator. It keeps one stored
// operand and one pending operator; there is no precedence and no
// multi-term expression.
package calc

import (
	"math"
	"strconv"
	"strings"
)

const errorDisplay = "Error"

type Operation int

const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

type Calculator struct {
	display string
	stored  float64
	op      Operation
	waiting bool
}

func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

func (c *Calculator) Display() string { return c.display }

func (c *Calculator) Stored() float64 { return c.stored }

func (c *Calculator) Pending() Operation { return c.op }

// Waiting reports whether the next digit starts a new number.
func (c *Calculator) Waiting() bool { return c.waiting }

func (c *Calculator) InputDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	digit := strconv.Itoa(d)
	if c.waiting || c.display == "0" || c.display == errorDisplay {
		c.display = digit
		c.waiting = false
		return
	}
	c.display += digit
}

func (c *Calculator) InputDot() {
	if c.waiting || c.display == errorDisplay {
		c.display = "0."
		c.waiting = false
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

func (c *Calculator) Clear() {
	c.display = "0"
	c.stored = 0
	c.op = OpNone
	c.waiting = true
}

// Operate folds the displayed number into the stored operand using the
// previously pending operator, then makes next pending. Dividing by zero
// here yields 0.
func (c *Calculator) Operate(next Operation) {
	if c.waiting {
		c.op = next
		return
	}
	input := c.displayValue()
	result, ok := apply(c.op, c.stored, input)
	if !ok {
		result = 0
	}
	c.display = FormatNumber(result)
	c.stored = result
	c.op = next
	c.waiting = true
}

// Equals finalises the pending operation. Dividing by zero shows Error and
// leaves the rest of the state alone.
func (c *Calculator) Equals() {
	input := c.displayValue()
	result, ok := apply(c.op, c.stored, input)
	if !ok {
		c.display = errorDisplay
		return
	}
	c.display = FormatNumber(result)
	c.stored = 0
	c.op = OpNone
	c.waiting = true
}

func (c *Calculator) Negate() {
	if v, err := strconv.ParseFloat(c.display, 64); err == nil {
		c.display = FormatNumber(-v)
	}
}

func (c *Calculator) Percent() {
	if v, err := strconv.ParseFloat(c.display, 64); err == nil {
		c.display = FormatNumber(v / 100)
	}
}

// displayValue parses the display; anything unparsable counts as 0.
func (c *Calculator) displayValue() float64 {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil {
		return 0
	}
	return v
}

func apply(op Operation, stored, input float64) (float64, bool) {
	switch op {
	case OpAdd:
		return stored + input, true
	case OpSubtract:
		return stored - input, true
	case OpMultiply:
		return stored * input, true
	case OpDivide:
		if input == 0 {
			return 0, false
		}
		return stored / input, true
	default:
		return input, true
	}
}

// FormatNumber prints whole values without a fraction and everything else
// as the shortest decimal that round-trips, never in exponent form.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n), math.IsInf(n, 0):
		return errorDisplay
	case n == math.Trunc(n):
		return strconv.FormatFloat(n, 'f', 0, 64)
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
