package domain

import (
	"errors"
	"testing"
)

func newTestEntity(name string, attrs ...Attribute) *Entity {
	return &Entity{
		ID:         NewEntityID(),
		Name:       ParseName(name),
		Attributes: attrs,
	}
}

func TestNewWorld_IndexesEntities(t *testing.T) {
	door := newTestEntity("rusty.metal.door", Closable{Closed: true})
	room := newTestEntity("small.rock.room", Roomlike{Entities: []EntityID{door.ID}})

	w, err := NewWorld("Test", room.ID, []*Entity{door, room})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}

	got, ok := w.Entity(room.ID)
	if !ok || got != room {
		t.Errorf("Entity(room) = %v, %v; want room", got, ok)
	}

	id, ok := w.Lookup(ParseName("rusty.metal.door"))
	if !ok || id != door.ID {
		t.Errorf("Lookup(rusty.metal.door) = %v, %v; want %v", id, ok, door.ID)
	}

	if attrs := w.Attributes(door.ID); len(attrs) != 1 {
		t.Errorf("Attributes(door) has %d entries, want 1", len(attrs))
	}
	if attrs := w.Attributes(NewEntityID()); attrs != nil {
		t.Errorf("Attributes(unknown) = %v, want nil", attrs)
	}
}

func TestWorld_LookupFirstWins(t *testing.T) {
	first := newTestEntity("twin")
	second := newTestEntity("twin")

	w, err := NewWorld("Test", first.ID, []*Entity{first, second})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	id, ok := w.Lookup(Name{"twin"})
	if !ok {
		t.Fatal("Lookup(twin) not found")
	}
	if id != first.ID {
		t.Errorf("Lookup(twin) = %v, want first entity %v", id, first.ID)
	}
}

func TestWorld_LookupMisses(t *testing.T) {
	e := newTestEntity("a.b")
	w, err := NewWorld("Test", e.ID, []*Entity{e})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	tests := []struct {
		name string
		path Name
	}{
		{"unknown", ParseName("no.such.entity")},
		{"prefix only", Name{"a"}},
		{"dotted single word", Name{"a.b"}},
		{"empty", Name{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id, ok := w.Lookup(tt.path); ok {
				t.Errorf("Lookup(%q) = %v, want miss", tt.path, id)
			}
		})
	}
}

func TestNewWorld_Validation(t *testing.T) {
	a := newTestEntity("a")
	dup := &Entity{ID: a.ID, Name: Name{"b"}}
	bad := &Entity{ID: NewEntityID(), Name: Name{"x", ""}}

	tests := []struct {
		name     string
		start    EntityID
		entities []*Entity
		want     error
	}{
		{"duplicate id", a.ID, []*Entity{a, dup}, ErrDuplicateID},
		{"invalid name", a.ID, []*Entity{a, bad}, ErrInvalidName},
		{"nil entity", a.ID, []*Entity{a, nil}, ErrNilEntity},
		{"missing start", NewEntityID(), []*Entity{a}, ErrNoStartLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorld("Test", tt.start, tt.entities)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewWorld() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWorld_Names(t *testing.T) {
	a := newTestEntity("small.rock.room")
	b := newTestEntity("rusty.metal.door")
	w, err := NewWorld("Test", a.ID, []*Entity{a, b})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	names := w.Names()
	if len(names) != 2 || names[0] != "small.rock.room" || names[1] != "rusty.metal.door" {
		t.Errorf("Names() = %v", names)
	}
}
