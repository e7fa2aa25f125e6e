package template

import "github.com/mgrabmueller/mudstuck/internal/domain"

// FuncID - идентификатор встроенной функции. Таблица закрыта:
// новая функция требует правки кода.
type FuncID uint8

const (
	FuncIf FuncID = iota + 1
	FuncClosed
	FuncLocked
)

// builtins - таблица встроенных функций: имя, арность, особая форма.
// Реализации выбираются в evaluator.apply по FuncID.
var builtins = []Func{
	{ID: FuncIf, Name: "if", Special: true, MinArgs: 3, MaxArgs: 3},
	{ID: FuncClosed, Name: "closed", MinArgs: 1, MaxArgs: 1},
	{ID: FuncLocked, Name: "locked", MinArgs: 1, MaxArgs: 1},
}

var builtinByName = func() map[string]Func {
	m := make(map[string]Func, len(builtins))
	for _, f := range builtins {
		m[f.Name] = f
	}
	return m
}()

// LookupBuiltin возвращает встроенную функцию по зарезервированному имени.
func LookupBuiltin(name string) (Func, bool) {
	f, ok := builtinByName[name]
	return f, ok
}

// Builtins возвращает имена встроенных функций в порядке таблицы.
func Builtins() []string {
	out := make([]string, 0, len(builtins))
	for _, f := range builtins {
		out = append(out, f.Name)
	}
	return out
}

// apply применяет функцию к уже подготовленным аргументам: для особых
// форм это Deferred, для остальных - вычисленные значения.
func (e *evaluator) apply(f Func, args []Value) (Value, error) {
	switch f.ID {
	case FuncIf:
		return e.applyIf(args)
	case FuncClosed:
		return e.attributeFlag(f, args[0], domain.AttributeClosable)
	case FuncLocked:
		return e.attributeFlag(f, args[0], domain.AttributeLockable)
	default:
		return nil, internalError("unknown builtin %q", f.Name)
	}
}

// applyIf вычисляет условие и ровно одну ветку. Невыбранная ветка
// не вычисляется никогда: она может ссылаться на сущности, которых
// в текущем контексте нет.
func (e *evaluator) applyIf(args []Value) (Value, error) {
	cond, ok := args[0].(Deferred)
	if !ok {
		return nil, internalError("if condition already evaluated")
	}

	cv, err := e.eval(cond.Node)
	if err != nil {
		return nil, err
	}
	b, ok := cv.(Bool)
	if !ok {
		return nil, typeError("if expects boolean expression as first argument")
	}

	branch := args[2]
	if b {
		branch = args[1]
	}
	d, ok := branch.(Deferred)
	if !ok {
		return nil, internalError("if expression already evaluated")
	}
	return e.eval(d.Node)
}

// attributeFlag читает логический атрибут сущности. Отсутствие атрибута - false.
func (e *evaluator) attributeFlag(f Func, arg Value, kind domain.AttributeKind) (Value, error) {
	var id domain.EntityID
	switch v := arg.(type) {
	case Ref:
		id = v.ID
	case Deferred:
		return nil, internalError("deferred expression forced outside special form")
	default:
		return nil, typeError("function %s requires a name of an entity", f.Name)
	}

	for _, a := range e.world.Attributes(id) {
		if a.Kind() != kind {
			continue
		}
		switch a := a.(type) {
		case domain.Closable:
			return Bool(a.Closed), nil
		case domain.Lockable:
			return Bool(a.Locked), nil
		}
	}
	return Bool(false), nil
}
