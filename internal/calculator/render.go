package calculator

// RenderState — то, что слой представления показывает после события.
type RenderState struct {
	DisplayText string `json:"display"`
	ClearLabel  string `json:"clear_label"` // "AC" либо "C"
}

// Render возвращает текущее состояние дисплея, не обрабатывая событий.
// Дисплей — чистая функция состояния, пересчитывать его можно сколько угодно.
func (c *Calculator) Render() RenderState {
	label := "AC"
	if c.hasInput() || c.justEvaluated() {
		label = "C"
	}
	return RenderState{DisplayText: c.displayText(), ClearLabel: label}
}

// displayText собирает строку дисплея: текст ошибки, «левый op»,
// «левый op правый» или просто текущий операнд.
func (c *Calculator) displayText() string {
	switch c.phase {
	case phaseError:
		return ErrorText
	case phaseOperator:
		return FormatNumber(c.acc) + " " + c.operator.String()
	case phaseSecond:
		return FormatNumber(c.acc) + " " + c.operator.String() + " " + FormatNumber(parseOrZero(c.current))
	default:
		return FormatNumber(parseOrZero(c.current))
	}
}

func (c *Calculator) render(event string) RenderState {
	rs := c.Render()
	if c.OnEvent != nil {
		c.OnEvent(event, c.snapshot())
	}
	return rs
}

func (c *Calculator) snapshot() Snapshot {
	return Snapshot{
		Accumulator:     c.acc,
		Input:           c.current,
		Operator:        c.operator,
		AwaitingOperand: c.awaitingOperand(),
		JustEvaluated:   c.justEvaluated(),
		HasInput:        c.hasInput(),
		Errored:         c.errored(),
	}
}
