package engine

import (
	"strings"
	"unicode/utf8"
)

// Wrap разбивает текст на строки не длиннее width рун.
//
// Слова разделяются одиночными пробелами; двойной пробел дает пустое
// слово, и оно сохраняется как лишний пробел. Слово длиннее width
// занимает строку целиком. Пустой текст - ни одной строки.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}

	var (
		lines   []string
		line    strings.Builder
		pos     int
		started bool // в строке уже есть хотя бы одно слово
	)
	for _, w := range strings.Split(text, " ") {
		n := utf8.RuneCountInString(w)
		if started && pos+1+n > width {
			lines = append(lines, line.String())
			line.Reset()
			pos, started = 0, false
		}
		if started {
			line.WriteByte(' ')
			pos++
		}
		line.WriteString(w)
		pos += n
		started = true
	}
	if started {
		lines = append(lines, line.String())
	}
	return lines
}
