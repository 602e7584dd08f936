package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"deskcalc/internal/calculator"
)

// Терминальная клавиатура для движка: цифры, точка, операции, «=», «%»,
// n — смена знака, c — C/AC, b — backspace, q — выход. Пустая строка
// (Enter) работает как «=».
func main() {
	calc := calculator.New()

	fmt.Println("deskcalc: 0-9 . + - * / = %  n=+/-  c=C/AC  b=backspace  q=выход")
	printState(calc.Render())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			printState(calc.Equals())
			continue
		}
		for _, r := range line {
			key, ok := keyFor(r)
			if !ok {
				fmt.Printf("неизвестная клавиша: %q\n", r)
				continue
			}
			if key == "quit" {
				return
			}
			rs, err := calc.Press(key)
			if err != nil {
				fmt.Println(err)
				continue
			}
			printState(rs)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка чтения ввода:", err)
	}
}

func keyFor(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return string(r), true
	}
	switch r {
	case '.', ',':
		return ".", true
	case '+', '-', '*', '/', '=', '%':
		return string(r), true
	case 'n':
		return "sign", true
	case 'c':
		return "clear", true
	case 'b':
		return "backspace", true
	case 'q':
		return "quit", true
	}
	return "", false
}

func printState(rs calculator.RenderState) {
	fmt.Printf("[%s] %s\n", rs.ClearLabel, rs.DisplayText)
}
