package domain

// Entity - объект мира: комната, дверь, персонаж или предмет.
//
// Описания (Short, Long) - это исходный текст шаблонов, они
// вычисляются заново при каждом показе, поэтому отражают текущее
// состояние мира.
type Entity struct {
	// Идентификация
	ID   EntityID
	Name Name

	// Alias - человекочитаемый псевдоним для авторов контента.
	// Пустая строка означает, что псевдонима нет. Шаблоны его не используют.
	Alias string

	Short string
	Long  string

	// Атрибуты. Каждого вида не больше одного; при дубликатах берется первый.
	Attributes []Attribute
}

// Attribute возвращает первый атрибут заданного вида
func (e *Entity) Attribute(kind AttributeKind) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Kind() == kind {
			return a, true
		}
	}
	return nil, false
}

// Door возвращает атрибут Doorlike, если сущность - дверь.
func (e *Entity) Door() (Doorlike, bool) {
	a, ok := e.Attribute(AttributeDoorlike)
	if !ok {
		return Doorlike{}, false
	}
	return a.(Doorlike), true
}

// Room возвращает атрибут Roomlike, если сущность - комната.
func (e *Entity) Room() (Roomlike, bool) {
	a, ok := e.Attribute(AttributeRoomlike)
	if !ok {
		return Roomlike{}, false
	}
	return a.(Roomlike), true
}

// IsClosed - закрыта ли сущность. Без атрибута Closable - нет.
func (e *Entity) IsClosed() bool {
	if a, ok := e.Attribute(AttributeClosable); ok {
		return a.(Closable).Closed
	}
	return false
}

// IsLocked - заперта ли сущность. Без атрибута Lockable - нет.
func (e *Entity) IsLocked() bool {
	if a, ok := e.Attribute(AttributeLockable); ok {
		return a.(Lockable).Locked
	}
	return false
}
