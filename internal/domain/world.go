package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNilEntity       = errors.New("nil entity")
	ErrDuplicateID     = errors.New("duplicate entity id")
	ErrInvalidName     = errors.New("invalid entity name")
	ErrNoStartLocation = errors.New("start location not found")
)

// World - неизменяемый снимок мира.
//
// Создается один раз при старте через NewWorld и дальше только читается,
// поэтому блокировки не нужны.
type World struct {
	Name     string
	Entities []*Entity
	Start    EntityID

	// index: ID -> позиция в Entities (биекция)
	index map[EntityID]int
	// names: путь имени через точку -> ID первой сущности с таким именем
	names map[string]EntityID
}

// NewWorld собирает мир и строит индексы.
//
// Одинаковые пути имени разрешены: поиск по имени возвращает первую
// сущность в порядке Entities.
func NewWorld(name string, start EntityID, entities []*Entity) (*World, error) {
	w := &World{
		Name:     name,
		Entities: entities,
		Start:    start,
		index:    make(map[EntityID]int, len(entities)),
		names:    make(map[string]EntityID, len(entities)),
	}

	for i, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("entity #%d: %w", i, ErrNilEntity)
		}
		if _, dup := w.index[e.ID]; dup {
			return nil, fmt.Errorf("entity %s: %w", e.ID, ErrDuplicateID)
		}
		if !e.Name.Valid() {
			return nil, fmt.Errorf("entity %s (%q): %w", e.ID, e.Name.String(), ErrInvalidName)
		}
		w.index[e.ID] = i

		key := e.Name.String()
		if _, taken := w.names[key]; !taken {
			w.names[key] = e.ID
		}
	}

	if _, ok := w.index[start]; !ok {
		return nil, fmt.Errorf("start %s: %w", start, ErrNoStartLocation)
	}

	return w, nil
}

// Entity ищет сущность по ID
func (w *World) Entity(id EntityID) (*Entity, bool) {
	idx, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.Entities[idx], true
}

// Lookup ищет сущность по пути имени (первое совпадение в порядке мира)
func (w *World) Lookup(name Name) (EntityID, bool) {
	id, ok := w.names[name.String()]
	if !ok || !name.Valid() {
		return NilEntityID, false
	}
	return id, true
}

// Attributes возвращает атрибуты сущности или nil, если ее нет
func (w *World) Attributes(id EntityID) []Attribute {
	if e, ok := w.Entity(id); ok {
		return e.Attributes
	}
	return nil
}

// Names возвращает все пути имен через точку в порядке мира (для подсказок)
func (w *World) Names() []string {
	out := make([]string, 0, len(w.Entities))
	for _, e := range w.Entities {
		out = append(out, e.Name.String())
	}
	return out
}

// Len - количество сущностей
func (w *World) Len() int {
	return len(w.Entities)
}
