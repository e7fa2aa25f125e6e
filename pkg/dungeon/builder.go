package dungeon

import (
	"errors"
	"fmt"

	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/internal/template"
)

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrNotARoom      = errors.New("entity is not a room")
	ErrBadTemplate   = errors.New("invalid description template")
)

// pending - сущность до разрешения ссылок по именам
type pending struct {
	entity *domain.Entity
	kind   domain.AttributeKind // ROOMLIKE, DOORLIKE, CHARACTERLIKE или UNKNOWN для предметов
	links  []string             // концы двери или инвентарь персонажа
	room   string               // где лежит предмет / стоит персонаж
}

// WorldBuilder предоставляет fluent API для сборки мира.
//
// Сущности ссылаются друг на друга по именам; ссылки разрешаются в Build,
// поэтому порядок вызовов не важен. Ошибки копятся и возвращаются из Build.
type WorldBuilder struct {
	name   string
	start  string
	order  []*pending
	byName map[string]*pending
	errs   []error
}

// NewWorld создает новый builder для мира
func NewWorld(name string) *WorldBuilder {
	return &WorldBuilder{
		name:   name,
		byName: make(map[string]*pending),
	}
}

func (b *WorldBuilder) add(name string, t EntityTemplate, kind domain.AttributeKind) *pending {
	n := domain.ParseName(name)
	if !n.Valid() {
		b.errs = append(b.errs, fmt.Errorf("%q: %w", name, domain.ErrInvalidName))
	}

	p := &pending{entity: t.Spawn(n), kind: kind}
	b.order = append(b.order, p)
	// При дубликатах имени ссылки идут на первую сущность, как и поиск в мире
	if _, ok := b.byName[name]; !ok {
		b.byName[name] = p
	}
	return p
}

// Room добавляет комнату
func (b *WorldBuilder) Room(name string, t EntityTemplate) *WorldBuilder {
	b.add(name, t, domain.AttributeRoomlike)
	return b
}

// Door добавляет дверь между двумя комнатами. Дверь автоматически
// попадает в список сущностей обеих комнат.
func (b *WorldBuilder) Door(name string, t EntityTemplate, from, to string) *WorldBuilder {
	p := b.add(name, t, domain.AttributeDoorlike)
	p.links = []string{from, to}
	return b
}

// Item кладет предмет в комнату. Пустое имя комнаты - предмет никуда не
// положен (например, он в инвентаре персонажа).
func (b *WorldBuilder) Item(name string, t EntityTemplate, room string) *WorldBuilder {
	p := b.add(name, t, domain.AttributeUnknown)
	p.room = room
	return b
}

// Character ставит персонажа в комнату; inventory - имена предметов.
func (b *WorldBuilder) Character(name string, t EntityTemplate, room string, inventory ...string) *WorldBuilder {
	p := b.add(name, t, domain.AttributeCharacterlike)
	p.room = room
	p.links = inventory
	return b
}

// StartAt задает стартовую комнату
func (b *WorldBuilder) StartAt(room string) *WorldBuilder {
	b.start = room
	return b
}

func (b *WorldBuilder) resolve(name string) (domain.EntityID, error) {
	p, ok := b.byName[name]
	if !ok {
		return domain.NilEntityID, fmt.Errorf("%q: %w", name, ErrUnknownEntity)
	}
	return p.entity.ID, nil
}

func (b *WorldBuilder) roomOf(name string) (*pending, error) {
	p, ok := b.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEntity)
	}
	if p.kind != domain.AttributeRoomlike {
		return nil, fmt.Errorf("%q: %w", name, ErrNotARoom)
	}
	return p, nil
}

// Build разрешает ссылки, проверяет шаблоны описаний и собирает мир.
func (b *WorldBuilder) Build() (*domain.World, error) {
	errs := append([]error(nil), b.errs...)

	// 1. Содержимое комнат в порядке добавления
	contents := make(map[*pending][]domain.EntityID)
	for _, p := range b.order {
		switch p.kind {
		case domain.AttributeDoorlike:
			for _, end := range p.links {
				room, err := b.roomOf(end)
				if err != nil {
					errs = append(errs, fmt.Errorf("door %s: %w", p.entity.Name, err))
					continue
				}
				contents[room] = append(contents[room], p.entity.ID)
			}
		case domain.AttributeCharacterlike, domain.AttributeUnknown:
			if p.kind == domain.AttributeUnknown && p.room == "" {
				continue
			}
			room, err := b.roomOf(p.room)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p.entity.Name, err))
				continue
			}
			contents[room] = append(contents[room], p.entity.ID)
		}
	}

	// 2. Атрибуты со ссылками
	entities := make([]*domain.Entity, 0, len(b.order))
	for _, p := range b.order {
		e := p.entity
		switch p.kind {
		case domain.AttributeRoomlike:
			e.Attributes = append(e.Attributes, domain.Roomlike{Entities: contents[p]})
		case domain.AttributeDoorlike:
			var door domain.Doorlike
			for i, end := range p.links {
				id, err := b.resolve(end)
				if err != nil {
					continue // уже учтено выше
				}
				door.Endpoints[i] = id
			}
			e.Attributes = append(e.Attributes, door)
		case domain.AttributeCharacterlike:
			var inv []domain.EntityID
			for _, item := range p.links {
				id, err := b.resolve(item)
				if err != nil {
					errs = append(errs, fmt.Errorf("character %s: %w", e.Name, err))
					continue
				}
				inv = append(inv, id)
			}
			e.Attributes = append(e.Attributes, domain.Characterlike{Inventory: inv})
		}

		// 3. Описания должны хотя бы разбираться
		for _, src := range []string{e.Short, e.Long} {
			if _, err := template.Parse(src); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w: %s", e.Name, ErrBadTemplate, template.FormatError(err, src)))
			}
		}

		entities = append(entities, e)
	}

	start, err := b.resolve(b.start)
	if err != nil {
		errs = append(errs, fmt.Errorf("start: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return domain.NewWorld(b.name, start, entities)
}
