package template

import "github.com/mgrabmueller/mudstuck/internal/domain"

// World - то, что вычислителю нужно от мира: поиск сущности по пути
// имени и список ее атрибутов. *domain.World реализует этот интерфейс.
type World interface {
	Lookup(name domain.Name) (domain.EntityID, bool)
	Attributes(id domain.EntityID) []domain.Attribute
}

type evaluator struct {
	world World
}

// Eval вычисляет AST в контексте мира. Мир только читается.
func Eval(n Node, w World) (Value, error) {
	e := &evaluator{world: w}
	return e.eval(n)
}

func (e *evaluator) eval(n Node) (Value, error) {
	switch n := n.(type) {
	case Empty:
		return Str(""), nil
	case Literal:
		return Str(n.Text), nil
	case StringLit:
		return Str(n.Text), nil
	case Ident:
		return e.ident(n.Name)
	case Seq:
		return e.seq(n)
	case Call:
		return e.call(n)
	default:
		return nil, internalError("unknown node %T", n)
	}
}

func (e *evaluator) ident(name string) (Value, error) {
	if f, ok := LookupBuiltin(name); ok {
		return f, nil
	}
	if e.world != nil {
		if id, ok := e.world.Lookup(domain.ParseName(name)); ok {
			return Ref{ID: id}, nil
		}
	}
	return nil, undefinedError(name)
}

// seq: сначала левая часть целиком, затем правая. Обе должны быть строками.
func (e *evaluator) seq(n Seq) (Value, error) {
	l, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}

	ls, lok := l.(Str)
	rs, rok := r.(Str)
	if !lok || !rok {
		return nil, typeError("invalid operand for concatenation")
	}
	return ls + rs, nil
}

func (e *evaluator) call(n Call) (Value, error) {
	callee, err := e.eval(n.Callee)
	if err != nil {
		return nil, err
	}
	f, ok := callee.(Func)
	if !ok {
		return nil, typeError("non-function in function position")
	}

	// 1. Арность проверяется до вычисления аргументов
	cnt := len(n.Args)
	if cnt < f.MinArgs {
		return nil, arityError(f, BoundMin, f.MinArgs, cnt)
	}
	if cnt > f.MaxArgs {
		return nil, arityError(f, BoundMax, f.MaxArgs, cnt)
	}

	// 2. Особая форма получает аргументы невычисленными,
	// обычная функция - вычисленными слева направо
	args := make([]Value, 0, cnt)
	for _, a := range n.Args {
		if f.Special {
			args = append(args, Deferred{Node: a})
			continue
		}
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	// 3. Применение
	res, err := e.apply(f, args)
	if err != nil {
		return nil, err
	}
	if _, leaked := res.(Deferred); leaked {
		return nil, internalError("deferred expression forced outside special form")
	}
	return res, nil
}
