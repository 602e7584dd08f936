// Package calculator реализует движок настольного калькулятора в «обычном»
// режиме: цепочное вычисление операторов, контекстный процент, смена знака,
// двухступенчатая очистка C/AC, повторное «=» и ограниченное по длине
// форматирование дисплея.
package calculator

// phase — явное состояние машины. Флаги «ожидаем операнд» и «только что
// вычислено» выводятся из него, недостижимые комбинации невозможны.
type phase int

const (
	phaseInput    phase = iota // набор первого операнда
	phaseOperator              // оператор выбран, ждём второй операнд
	phaseSecond                // набор второго операнда
	phaseResult                // на дисплее результат «=»
	phaseError                 // деление на ноль или переполнение
)

// Snapshot — срез состояния для хука наблюдаемости.
type Snapshot struct {
	Accumulator     float64
	Input           string
	Operator        Op
	AwaitingOperand bool
	JustEvaluated   bool
	HasInput        bool
	Errored         bool
}

// Calculator хранит состояние одного калькулятора. Методы не потокобезопасны:
// вызывающая сторона обязана доставлять события строго последовательно, как
// это делает цикл событий UI или session.Session.
type Calculator struct {
	acc         float64
	current     string
	operator    Op
	lastOp      Op
	lastOperand float64
	phase       phase

	// OnEvent, если задан, вызывается после каждого события.
	// Хук совещательный: на поведение не влияет.
	OnEvent func(name string, s Snapshot)
}

// New создаёт калькулятор в исходном состоянии: пустой аккумулятор,
// на дисплее «0».
func New() *Calculator {
	c := &Calculator{}
	c.resetAll()
	return c
}

func (c *Calculator) resetAll() {
	c.acc = 0
	c.current = "0"
	c.operator = OpNone
	c.lastOp = OpNone
	c.lastOperand = 0
	c.phase = phaseInput
}

func (c *Calculator) awaitingOperand() bool { return c.phase == phaseOperator }
func (c *Calculator) justEvaluated() bool   { return c.phase == phaseResult }
func (c *Calculator) errored() bool         { return c.phase == phaseError }

func (c *Calculator) operatorPending() bool {
	return c.phase == phaseOperator || c.phase == phaseSecond
}

func (c *Calculator) hasInput() bool { return c.errored() || c.current != "0" }

// toError переводит машину в состояние ошибки. Внутреннее состояние
// сбрасывается целиком, чтобы некорректный аккумулятор не участвовал в
// дальнейших вычислениях.
func (c *Calculator) toError() {
	c.resetAll()
	c.phase = phaseError
}

// clearError выполняет неявный полный сброс, если на дисплее ошибка.
// Поведение после ошибки эталоном не задано; принято решение: любое
// следующее событие сначала сбрасывает всё состояние.
func (c *Calculator) clearError() {
	if c.phase == phaseError {
		c.resetAll()
	}
}

// beginEntry готовит машину к набору цифры или точки.
func (c *Calculator) beginEntry() {
	c.clearError()
	if c.phase == phaseResult {
		// Цифра после «голого» результата начинает новое выражение с нуля.
		c.resetAll()
	}
	if c.phase == phaseOperator {
		// Новый операнд начинается с чистого «0»; аккумулятор и оператор
		// остаются на дисплее.
		c.current = "0"
		c.phase = phaseSecond
	}
}

// Digit обрабатывает нажатие цифры 0–9.
func (c *Calculator) Digit(d int) RenderState {
	if d < 0 || d > 9 {
		return c.Render()
	}
	c.beginEntry()
	c.appendDigit(d)
	return c.render("digit")
}

// Point добавляет десятичную точку; повторная точка игнорируется.
func (c *Calculator) Point() RenderState {
	c.beginEntry()
	c.appendPoint()
	return c.render("point")
}

// ToggleSign меняет знак текущего операнда; на «0» не действует.
func (c *Calculator) ToggleSign() RenderState {
	c.clearError()
	c.toggleSignText()
	return c.render("sign")
}

// Percent: без выбранного оператора текущий операнд делится на 100;
// с оператором берётся процент от аккумулятора. Оператор, аккумулятор и
// ожидание операнда не меняются.
func (c *Calculator) Percent() RenderState {
	c.clearError()
	cur := parseOrZero(c.current)
	if c.operatorPending() {
		cur = c.acc * (cur / 100)
	} else {
		cur = cur / 100
	}
	if !isFinite(cur) {
		c.toError()
		return c.render("percent")
	}
	c.current = FormatNumber(cur)
	return c.render("percent")
}

// SetOperator записывает оператор. Если оператор уже выбран, цепочка
// немедленно сворачивается: acc = acc op current; набранные цифры текущего
// операнда при этом не меняются.
func (c *Calculator) SetOperator(op Op) RenderState {
	c.clearError()
	cur := parseOrZero(c.current)
	if c.operatorPending() {
		c.acc = apply(c.acc, cur, c.operator)
		if !isFinite(c.acc) {
			c.toError()
			return c.render("operator")
		}
	} else {
		c.acc = cur
	}
	c.operator = op
	c.lastOp = OpNone
	c.lastOperand = 0
	c.phase = phaseOperator
	return c.render("operator")
}

// Equals вычисляет результат. Повторное «=» без выбранного оператора заново
// применяет последнюю пару оператор/операнд.
func (c *Calculator) Equals() RenderState {
	c.clearError()
	cur := parseOrZero(c.current)
	var result float64
	switch {
	case c.operatorPending():
		result = apply(c.acc, cur, c.operator)
		c.lastOp = c.operator
		c.lastOperand = cur
		c.operator = OpNone
	case c.lastOp != OpNone:
		result = apply(cur, c.lastOperand, c.lastOp)
	default:
		result = cur
	}
	if !isFinite(result) {
		c.toError()
		return c.render("equals")
	}
	c.current = FormatNumber(result)
	c.phase = phaseResult
	return c.render("equals")
}

// ClearOrReset — двухступенчатая очистка: C сбрасывает только текущий ввод,
// повторное нажатие (AC) — всё состояние.
func (c *Calculator) ClearOrReset() RenderState {
	if c.hasInput() || c.justEvaluated() {
		// C: аккумулятор, оператор и память повторного «=» сохраняются,
		// ожидание второго операнда не меняется.
		c.current = "0"
		switch c.phase {
		case phaseResult, phaseError:
			c.phase = phaseInput
		}
		return c.render("clear")
	}
	// AC: полный сброс. Отображаемый текст сохраняется, чтобы цифры не
	// исчезали с уже пустого дисплея.
	saved := c.current
	c.resetAll()
	c.current = saved
	return c.render("clear")
}

// Backspace удаляет последний символ текущего операнда; сразу после «=»
// не действует.
func (c *Calculator) Backspace() RenderState {
	if c.justEvaluated() {
		return c.render("backspace")
	}
	c.clearError()
	c.backspaceText()
	return c.render("backspace")
}
