package template

import "strings"

// Node - узел AST. Набор вариантов закрыт: Empty, Seq, Literal,
// StringLit, Ident, Call.
//
// String возвращает нормализованный исходный текст узла в синтаксисе
// выражения; для шаблона целиком см. Source.
type Node interface {
	String() string
	node()
}

// Empty - нейтральный элемент конкатенации.
type Empty struct{}

// Seq - конкатенация: сначала Left, затем Right.
type Seq struct {
	Left, Right Node
}

// Literal - текст шаблона вне выражений, как есть.
type Literal struct {
	Text string
}

// StringLit - строка в кавычках внутри выражения.
type StringLit struct {
	Text  string
	Quote rune
}

// Ident - имя встроенной функции или путь имени сущности.
type Ident struct {
	Name string
}

// Call - применение (callee arg...).
type Call struct {
	Callee Node
	Args   []Node
}

func (Empty) node()     {}
func (Seq) node()       {}
func (Literal) node()   {}
func (StringLit) node() {}
func (Ident) node()     {}
func (Call) node()      {}

func (Empty) String() string     { return "" }
func (n Literal) String() string { return n.Text }
func (n Ident) String() string   { return n.Name }

func (n Seq) String() string {
	return segment(n.Left) + segment(n.Right)
}

func (n StringLit) String() string {
	q := n.Quote
	if q == 0 {
		q = '"'
	}
	return string(q) + n.Text + string(q)
}

func (n Call) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.Callee.String())
	for _, a := range n.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Source печатает дерево верхнего уровня как исходный текст шаблона.
func Source(n Node) string {
	return segment(n)
}

// segment печатает элемент последовательности: выражения получают сигил.
func segment(n Node) string {
	switch n.(type) {
	case Empty, Seq, Literal:
		return n.String()
	default:
		return string(Sigil) + n.String()
	}
}
