package calc

type ActionKind int

const (
	ActDigit ActionKind = iota
	ActDot
	ActOperator
	ActEquals
	ActClear
	ActNegate
	ActPercent
)

// Action is one button press or key press. Digit is set for ActDigit and
// Op for ActOperator.
type Action struct {
	Kind  ActionKind
	Digit int
	Op    Operation
}

func Digit(d int) Action {
	return Action{Kind: ActDigit, Digit: d}
}

func Operator(op Operation) Action {
	return Action{Kind: ActOperator, Op: op}
}

var (
	Dot     = Action{Kind: ActDot}
	Equals  = Action{Kind: ActEquals}
	Clear   = Action{Kind: ActClear}
	Negate  = Action{Kind: ActNegate}
	Percent = Action{Kind: ActPercent}
)

func (c *Calculator) Dispatch(a Action) {
	switch a.Kind {
	case ActDigit:
		c.InputDigit(a.Digit)
	case ActDot:
		c.InputDot()
	case ActOperator:
		c.Operate(a.Op)
	case ActEquals:
		c.Equals()
	case ActClear:
		c.Clear()
	case ActNegate:
		c.Negate()
	case ActPercent:
		c.Percent()
	}
}

// KeyAction maps a key name (a typed character, or "Enter"/"Escape") to
// the action it triggers.
func KeyAction(key string) (Action, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Digit(int(key[0] - '0')), true
	}
	switch key {
	case "+":
		return Operator(OpAdd), true
	case "-":
		return Operator(OpSubtract), true
	case "*", "×":
		return Operator(OpMultiply), true
	case "/", "÷":
		return Operator(OpDivide), true
	case "=", "Enter":
		return Equals, true
	case ".":
		return Dot, true
	case "c", "C", "Escape":
		return Clear, true
	}
	return Action{}, false
}

type ButtonClass int

const (
	ClassNumber ButtonClass = iota
	ClassOperation
	ClassFunction
	ClassClear
	ClassEquals
)

type Button struct {
	Label  string
	Class  ButtonClass
	Action Action
	Span   int
}

// Keypad returns the button grid, top row first.
func Keypad() [][]Button {
	num := func(d int) Button {
		return Button{Label: string(rune('0' + d)), Class: ClassNumber, Action: Digit(d), Span: 1}
	}
	op := func(o Operation) Button {
		return Button{Label: o.Symbol(), Class: ClassOperation, Action: Operator(o), Span: 1}
	}
	return [][]Button{
		{
			{Label: "C", Class: ClassClear, Action: Clear, Span: 1},
			{Label: "±", Class: ClassFunction, Action: Negate, Span: 1},
			{Label: "%", Class: ClassFunction, Action: Percent, Span: 1},
			op(OpDivide),
		},
		{num(7), num(8), num(9), op(OpMultiply)},
		{num(4), num(5), num(6), op(OpSubtract)},
		{num(1), num(2), num(3), op(OpAdd)},
		{
			{Label: "0", Class: ClassNumber, Action: Digit(0), Span: 2},
			{Label: ".", Class: ClassNumber, Action: Dot, Span: 1},
			{Label: "=", Class: ClassEquals, Action: Equals, Span: 1},
		},
	}
}
