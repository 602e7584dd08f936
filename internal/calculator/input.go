package calculator

import "strings"

// Правки текста текущего операнда. Текст всегда либо «0», либо десятичное
// число со знаком и не более чем одной точкой.

func (c *Calculator) appendDigit(d int) {
	ch := string(rune('0' + d))
	if c.current == "0" || c.current == "-0" {
		sign := ""
		if strings.HasPrefix(c.current, "-") {
			sign = "-"
		}
		c.current = sign + ch
		return
	}
	c.current += ch
}

func (c *Calculator) appendPoint() {
	if !strings.Contains(c.current, ".") {
		c.current += "."
	}
}

func (c *Calculator) backspaceText() {
	s := c.current
	if len(s) <= 1 || (len(s) == 2 && strings.HasPrefix(s, "-")) {
		c.current = "0"
		return
	}
	c.current = s[:len(s)-1]
}

func (c *Calculator) toggleSignText() {
	if strings.HasPrefix(c.current, "-") {
		c.current = c.current[1:]
		return
	}
	if c.current != "0" {
		c.current = "-" + c.current
	}
}
