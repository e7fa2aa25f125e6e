package template

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError - синтаксическая ошибка в исходном тексте шаблона.
type ParseError struct {
	Pos int // позиция в рунах, с нуля
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// ErrorKind - категория семантической ошибки
type ErrorKind uint8

const (
	KindUndefined ErrorKind = iota + 1
	KindArity
	KindType
	KindInternal
)

var errorKindToString = map[ErrorKind]string{
	KindUndefined: "UNDEFINED",
	KindArity:     "ARITY",
	KindType:      "TYPE",
	KindInternal:  "INTERNAL",
}

func (k ErrorKind) String() string {
	if val, ok := errorKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Границы арности для KindArity
const (
	BoundMin = "min"
	BoundMax = "max"
)

// EvalError - ошибка вычисления: неизвестное имя, неверное число
// аргументов, значение не того вида или нарушение внутреннего инварианта.
type EvalError struct {
	Kind ErrorKind
	Msg  string

	// Заполняются только для KindArity
	Func  string
	Bound string
	Limit int
	Got   int
}

func (e *EvalError) Error() string {
	return e.Msg
}

func undefinedError(name string) *EvalError {
	return &EvalError{Kind: KindUndefined, Msg: "undefined identifier: " + name}
}

func arityError(f Func, bound string, limit, got int) *EvalError {
	word := "least"
	if bound == BoundMax {
		word = "most"
	}
	return &EvalError{
		Kind:  KindArity,
		Msg:   fmt.Sprintf("function %s requires at %s %d arguments, got %d", f.Name, word, limit, got),
		Func:  f.Name,
		Bound: bound,
		Limit: limit,
		Got:   got,
	}
}

func typeError(format string, args ...any) *EvalError {
	return &EvalError{Kind: KindType, Msg: fmt.Sprintf(format, args...)}
}

func internalError(format string, args ...any) *EvalError {
	return &EvalError{Kind: KindInternal, Msg: "internal error: " + fmt.Sprintf(format, args...)}
}

// FormatError добавляет к ошибке разбора строку исходника с кареткой
// под позицией ошибки. Остальные ошибки возвращаются как есть.
//
//	parse error at 1:3: identifier expected
//	   1 | #(3 x)
//	     |   ^
func FormatError(err error, src string) string {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	line, col := lineCol(src, pe.Pos)
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s\n", line, col, pe.Msg)
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", col-1))
	return b.String()
}

// lineCol переводит позицию в рунах в строку и столбец (с единицы).
func lineCol(src string, pos int) (line, col int) {
	line, col = 1, 1
	i := 0
	for _, r := range src {
		if i == pos {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return line, col
}
