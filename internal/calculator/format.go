package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ErrorText — текст дисплея при ошибке вычисления.
const ErrorText = "Error"

// maxDisplayLen — ёмкость дисплея в символах.
const maxDisplayLen = 12

// FormatNumber приводит число к строке дисплея: до 12 значащих цифр без
// хвостовых нулей. Экспоненциальная запись сначала разворачивается в
// обычную; если итог всё равно длиннее дисплея, значение выводится в
// экспоненте с шестью знаками после точки. Порядок шагов важен: проверка
// длины выполняется последней.
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrorText
	}
	s := strconv.FormatFloat(v, 'g', 12, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'f', 12, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if len(s) > maxDisplayLen {
		s = strconv.FormatFloat(v, 'e', 6, 64)
	}
	return s
}

// parseOrZero — документированный фолбэк разбора: некорректный текст
// трактуется как 0, ошибка наружу не выходит. По инвариантам ввода такой
// текст возникнуть не должен.
func parseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
