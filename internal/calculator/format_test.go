package calculator_test

import (
	"math"
	"strconv"
	"testing"

	"deskcalc/internal/calculator"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{
			name: "ноль",
			in:   0,
			want: "0",
		},
		{
			name: "целое",
			in:   20,
			want: "20",
		},
		{
			name: "отрицательное дробное",
			in:   -2.5,
			want: "-2.5",
		},
		{
			name: "хвостовые нули обрезаются",
			in:   1.2300,
			want: "1.23",
		},
		{
			name: "шум плавающей точки скрыт",
			in:   0.1 + 0.2,
			want: "0.3",
		},
		{
			name: "малое число разворачивается из экспоненты",
			in:   0.00001,
			want: "0.00001",
		},
		{
			name: "ниже разрядности дисплея схлопывается в ноль",
			in:   1e-13,
			want: "0",
		},
		{
			name: "длинное целое уходит в экспоненту",
			in:   123456789012345,
			want: "1.234568e+14",
		},
		{
			name: "большая степень уходит в экспоненту",
			in:   1e20,
			want: "1.000000e+20",
		},
		{
			name: "двенадцать символов помещаются",
			in:   1234567890.5,
			want: "1234567890.5",
		},
		{
			name: "бесконечность",
			in:   math.Inf(1),
			want: "Error",
		},
		{
			name: "минус бесконечность",
			in:   math.Inf(-1),
			want: "Error",
		},
		{
			name: "не число",
			in:   math.NaN(),
			want: "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculator.FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, ожидалось %q", tt.in, got, tt.want)
			}
		})
	}
}

// Форматирование идемпотентно на уже канонических строках: разбор и
// обратное форматирование возвращают тот же текст.
func TestFormatRoundTrip(t *testing.T) {
	canonical := []string{
		"0", "1", "-1", "0.5", "12.25", "-3.75", "100",
		"0.001", "1234567890.5", "-0.00001", "999999999999",
	}

	for _, s := range canonical {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("тестовая строка %q не разбирается: %v", s, err)
		}
		if got := calculator.FormatNumber(v); got != s {
			t.Errorf("FormatNumber(%q) = %q, ожидалась та же строка", s, got)
		}
	}
}
