package template

import (
	"strconv"

	"github.com/mgrabmueller/mudstuck/internal/domain"
)

// Value - результат вычисления. Набор вариантов закрыт:
// Str, Bool, Func, Ref, Deferred.
type Value interface {
	String() string
	value()
}

// Str - строковое значение
type Str string

// Bool - логическое значение
type Bool bool

// Func - встроенная функция. Это не замыкание: ID указывает на строку
// фиксированной таблицы builtins.
type Func struct {
	ID      FuncID
	Name    string
	Special bool
	MinArgs int
	MaxArgs int
}

// Ref - ссылка на сущность, результат разрешения пути имени.
type Ref struct {
	ID domain.EntityID
}

// Deferred - невычисленный аргумент особой формы. Появляется только
// при вызове функции с Special == true.
type Deferred struct {
	Node Node
}

func (Str) value()      {}
func (Bool) value()     {}
func (Func) value()     {}
func (Ref) value()      {}
func (Deferred) value() {}

func (v Str) String() string      { return strconv.Quote(string(v)) }
func (v Bool) String() string     { return strconv.FormatBool(bool(v)) }
func (v Func) String() string     { return "<builtin " + v.Name + ">" }
func (v Ref) String() string      { return "<entity " + v.ID.String() + ">" }
func (v Deferred) String() string { return "<deferred " + v.Node.String() + ">" }
