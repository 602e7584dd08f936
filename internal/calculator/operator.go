package calculator

import "math"

// Op — бинарная операция калькулятора.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// String возвращает символ операции для дисплея.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return ""
}

// ParseOp разбирает символ операции.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	}
	return OpNone, false
}

// apply вычисляет a op b в арифметике float64. Деление на ноль всегда даёт
// +Inf независимо от знака числителя; в ошибку дисплея его переводит
// вызывающий код. Других отказов нет, функция тотальна.
func apply(a, b float64, op Op) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return math.Inf(1)
		}
		return a / b
	}
	return b
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
