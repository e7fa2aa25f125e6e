package template

// Render разбирает и вычисляет шаблон. Итоговое значение обязано быть
// строкой: логическое значение, ссылка или функция на верхнем уровне -
// ошибка "invalid value".
func Render(src string, w World) (string, error) {
	n, err := Parse(src)
	if err != nil {
		return "", err
	}
	return RenderNode(n, w)
}

// RenderNode вычисляет уже разобранный шаблон.
func RenderNode(n Node, w World) (string, error) {
	v, err := Eval(n, w)
	if err != nil {
		return "", err
	}
	s, ok := v.(Str)
	if !ok {
		return "", &EvalError{Kind: KindInternal, Msg: "invalid value: " + v.String()}
	}
	return string(s), nil
}
