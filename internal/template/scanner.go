package template

// Scanner - курсор по символам исходного текста.
//
// Работает с рунами, а не с байтами: описания написаны не только
// ASCII-символами. Логики разбора здесь нет.
type Scanner struct {
	runes []rune
	pos   int
}

// NewScanner создает сканер; текущий символ - первый символ src
// (или конец ввода для пустой строки).
func NewScanner(src string) *Scanner {
	return &Scanner{runes: []rune(src)}
}

// Current возвращает текущий символ. ok == false означает конец ввода.
func (s *Scanner) Current() (r rune, ok bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

// Next переходит к следующему символу. В конце ввода ничего не делает.
func (s *Scanner) Next() {
	if s.pos < len(s.runes) {
		s.pos++
	}
}

// Pos - номер текущего символа (в рунах, с нуля).
func (s *Scanner) Pos() int {
	return s.pos
}

// SkipSpace пропускает пробелы, табуляции и переводы строк.
func (s *Scanner) SkipSpace() {
	for {
		c, ok := s.Current()
		if !ok || !isSpace(c) {
			return
		}
		s.Next()
	}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
