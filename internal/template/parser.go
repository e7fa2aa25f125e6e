package template

import (
	"fmt"
	"strings"
)

// Sigil открывает выражение внутри шаблона.
const Sigil = '#'

// Грамматика:
//
//	template   := segment*
//	segment    := literalRun | '#' expr
//	expr       := '(' call ')' | stringLit | identifier
//	call       := identifier expr*
//	identifier := [A-Za-z_][A-Za-z0-9_.]*
//	stringLit  := quote (любой символ кроме той же кавычки)* quote
//
// Пробельные символы внутри выражений пропускаются. Экранирования в
// строках нет.
type parser struct {
	s *Scanner
}

// Parse разбирает шаблон в AST. Сегменты собираются в левую цепочку Seq
// в порядке исходника. Пустой шаблон - Empty, шаблон из одного сегмента -
// сам этот сегмент, так что "#(locked door)" вычисляется в Bool, а не
// в конкатенацию.
func Parse(src string) (Node, error) {
	p := &parser{s: NewScanner(src)}
	return p.template()
}

func (p *parser) template() (Node, error) {
	var ret Node
	for {
		c, ok := p.s.Current()
		if !ok {
			break
		}

		var seg Node
		if c == Sigil {
			p.s.Next()
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			seg = e
		} else {
			seg = p.literalRun()
		}

		if ret == nil {
			ret = seg
		} else {
			ret = Seq{Left: ret, Right: seg}
		}
	}

	if ret == nil {
		return Empty{}, nil
	}
	return ret, nil
}

// literalRun забирает максимальный кусок текста без сигила.
func (p *parser) literalRun() Node {
	var b strings.Builder
	for {
		c, ok := p.s.Current()
		if !ok || c == Sigil {
			return Literal{Text: b.String()}
		}
		b.WriteRune(c)
		p.s.Next()
	}
}

func (p *parser) expr() (Node, error) {
	p.s.SkipSpace()
	c, ok := p.s.Current()
	switch {
	case !ok:
		return nil, p.errorf("unexpected end of string in expression")
	case c == '(':
		p.s.Next()
		return p.call()
	case c == '\'' || c == '"':
		p.s.Next()
		return p.stringLit(c)
	case isIdentStart(c):
		return p.ident()
	default:
		return nil, p.errorf("unexpected character in expression: %c", c)
	}
}

// call разбирает всё после '(' включая закрывающую скобку.
func (p *parser) call() (Node, error) {
	p.s.SkipSpace()
	callee, err := p.ident()
	if err != nil {
		return nil, err
	}

	var args []Node
	for {
		p.s.SkipSpace()
		c, ok := p.s.Current()
		if !ok {
			return nil, p.errorf("unexpected end of string in call expression")
		}
		if c == ')' {
			p.s.Next()
			return Call{Callee: callee, Args: args}, nil
		}

		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
}

func (p *parser) stringLit(quote rune) (Node, error) {
	var b strings.Builder
	for {
		c, ok := p.s.Current()
		if !ok {
			return nil, p.errorf("unexpected end of string in string literal")
		}
		p.s.Next()
		if c == quote {
			return StringLit{Text: b.String(), Quote: quote}, nil
		}
		b.WriteRune(c)
	}
}

func (p *parser) ident() (Node, error) {
	c, ok := p.s.Current()
	if !ok {
		return nil, p.errorf("unexpected end of string in identifier")
	}
	if !isIdentStart(c) {
		return nil, p.errorf("identifier expected")
	}

	var b strings.Builder
	for ok && isIdentPart(c) {
		b.WriteRune(c)
		p.s.Next()
		c, ok = p.s.Current()
	}
	return Ident{Name: b.String()}, nil
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{Pos: p.s.Pos(), Msg: fmt.Sprintf(format, args...)}
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || c == '.' || (c >= '0' && c <= '9')
}
