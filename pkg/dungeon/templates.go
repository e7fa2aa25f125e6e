package dungeon

import "github.com/mgrabmueller/mudstuck/internal/domain"

// EntityTemplate определяет шаблон для создания сущности.
// Short и Long - исходный текст шаблонов описаний, они могут содержать #(...).
type EntityTemplate struct {
	Alias string
	Short string
	Long  string

	// Closable/Lockable: nil - атрибута нет
	Closed *bool
	Locked *bool
}

// Spawn создает сущность из шаблона с новым ID
func (t EntityTemplate) Spawn(name domain.Name) *domain.Entity {
	e := &domain.Entity{
		ID:    domain.NewEntityID(),
		Name:  name,
		Alias: t.Alias,
		Short: t.Short,
		Long:  t.Long,
	}

	if t.Closed != nil {
		e.Attributes = append(e.Attributes, domain.Closable{Closed: *t.Closed})
	}
	if t.Locked != nil {
		e.Attributes = append(e.Attributes, domain.Lockable{Locked: *t.Locked})
	}

	return e
}

func flag(v bool) *bool { return &v }

// --- ДВЕРИ ---

var RustyMetalDoor = EntityTemplate{
	Alias:  "metal_door_1",
	Short:  "Metalltür",
	Long:   "Eine verbeulte, rostige Tür aus Metall.#(if (closed rusty.metal.door) \" Die Tür ist geschlossen.\" \"\")",
	Closed: flag(true),
	Locked: flag(false),
}

// --- КОМНАТЫ ---

var SmallRockRoom = EntityTemplate{
	Short: "Ein kleiner Raum mit Wänden aus rohem Fels",
	Long: "Der Raum hat eine Größe von etwa sechs Quadratmetern. Der Boden, die Decke und die Wände " +
		"bestehen aus roh behauenem Fels. Der Boden ist mit Schutt bedeckt.  In einer der Wände " +
		"befindet sich eine zugemauerte Türöffnung, gegenüber ist eine " +
		"#(if (closed rusty.metal.door) \"geschlossene\" \"geöffnete\")" +
		"#(if (locked rusty.metal.door) \" verriegelte\" \"\") Metalltür eingelassen.",
}

var CrampedRockTunnel = EntityTemplate{
	Short: "Ein niedriger Felstunnel",
	Long: "Ein schmaler, niedriger Tunnel, etwa 1,70 Meter hoch und einen Meter breit. " +
		"Der Tunnel führt leicht bergab und hat an beiden Enden Metalltüren",
}

// RoomTemplates - комнаты по имени (через точку), для сборки мира
var RoomTemplates = map[string]EntityTemplate{
	"small.rock.room":     SmallRockRoom,
	"cramped.rock.tunnel": CrampedRockTunnel,
}

// DoorTemplates - двери по имени (через точку)
var DoorTemplates = map[string]EntityTemplate{
	"rusty.metal.door": RustyMetalDoor,
}
