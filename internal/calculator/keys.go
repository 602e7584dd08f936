package calculator

import "fmt"

// Press транслирует клавишу фронтенда в событие движка. Набор клавиш
// повторяет клавиатурные привязки настольной версии: цифры, точка или
// запятая, четыре операции, «=», «%», смена знака, очистка и backspace.
// Неизвестная клавиша — единственная ошибка пакета; состояние при этом
// не меняется.
func (c *Calculator) Press(key string) (RenderState, error) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return c.Digit(int(key[0] - '0')), nil
	}
	switch key {
	case ".", ",":
		return c.Point(), nil
	case "+", "-", "*", "/":
		op, _ := ParseOp(key)
		return c.SetOperator(op), nil
	case "=", "enter":
		return c.Equals(), nil
	case "%":
		return c.Percent(), nil
	case "sign", "+/-":
		return c.ToggleSign(), nil
	case "clear", "esc":
		return c.ClearOrReset(), nil
	case "backspace":
		return c.Backspace(), nil
	}
	return c.Render(), fmt.Errorf("неизвестная клавиша: %q", key)
}
