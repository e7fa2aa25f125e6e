package engine

import (
	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/pkg/dungeon"
)

// Имена сущностей примерного мира
const (
	ExampleDoor   = "rusty.metal.door"
	ExampleRoom   = "small.rock.room"
	ExampleTunnel = "cramped.rock.tunnel"
)

// ExampleWorld собирает маленький мир: комната и туннель, соединенные
// закрытой, но не запертой металлической дверью. Игрок начинает в комнате.
func ExampleWorld() (*domain.World, error) {
	return dungeon.NewWorld("Example World").
		Door(ExampleDoor, dungeon.DoorTemplates[ExampleDoor], ExampleRoom, ExampleTunnel).
		Room(ExampleRoom, dungeon.RoomTemplates[ExampleRoom]).
		Room(ExampleTunnel, dungeon.RoomTemplates[ExampleTunnel]).
		StartAt(ExampleRoom).
		Build()
}
