package command

// Verb - действие команды
type Verb uint8

const (
	VerbUnknown Verb = iota
	VerbGet
	VerbPut
	VerbUse
	VerbMove
	VerbBuy
	VerbDrink
	VerbEat
	VerbSleep
)

// Синонимы глаголов
var verbStringToType = map[string]Verb{
	"get":     VerbGet,
	"take":    VerbGet,
	"acquire": VerbGet,
	"put":     VerbPut,
	"give":    VerbPut,
	"toss":    VerbPut,
	"drop":    VerbPut,
	"use":     VerbUse,
	"move":    VerbMove,
	"go":      VerbMove,
	"buy":     VerbBuy,
	"drink":   VerbDrink,
	"eat":     VerbEat,
	"sleep":   VerbSleep,
}

var verbTypeToString = map[Verb]string{
	VerbGet:   "GET",
	VerbPut:   "PUT",
	VerbUse:   "USE",
	VerbMove:  "MOVE",
	VerbBuy:   "BUY",
	VerbDrink: "DRINK",
	VerbEat:   "EAT",
	VerbSleep: "SLEEP",
}

// ParseVerb ищет глагол по слову (в нижнем регистре)
func ParseVerb(s string) Verb {
	return verbStringToType[s]
}

func (v Verb) String() string {
	if val, ok := verbTypeToString[v]; ok {
		return val
	}
	return "UNKNOWN"
}

// Connector - связка перед косвенным объектом
type Connector uint8

const (
	ConnectorNone Connector = iota
	ConnectorInto
	ConnectorOnto
	ConnectorUnder
	ConnectorBeside // отдельного слова пока нет
	ConnectorTo
	ConnectorFrom
	ConnectorWith
)

var connectorStringToType = map[string]Connector{
	"in":    ConnectorInto,
	"into":  ConnectorInto,
	"on":    ConnectorOnto,
	"onto":  ConnectorOnto,
	"under": ConnectorUnder,
	"to":    ConnectorTo,
	"from":  ConnectorFrom,
	"with":  ConnectorWith,
}

var connectorTypeToString = map[Connector]string{
	ConnectorInto:   "INTO",
	ConnectorOnto:   "ONTO",
	ConnectorUnder:  "UNDER",
	ConnectorBeside: "BESIDE",
	ConnectorTo:     "TO",
	ConnectorFrom:   "FROM",
	ConnectorWith:   "WITH",
}

// ParseConnector ищет связку по слову
func ParseConnector(s string) Connector {
	return connectorStringToType[s]
}

func (c Connector) String() string {
	if val, ok := connectorTypeToString[c]; ok {
		return val
	}
	return "NONE"
}

// Direction - сторона света
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionNorth
	DirectionEast
	DirectionSouth
	DirectionWest
)

var directionStringToType = map[string]Direction{
	"north": DirectionNorth,
	"east":  DirectionEast,
	"south": DirectionSouth,
	"west":  DirectionWest,
}

var directionTypeToString = map[Direction]string{
	DirectionNorth: "NORTH",
	DirectionEast:  "EAST",
	DirectionSouth: "SOUTH",
	DirectionWest:  "WEST",
}

// ParseDirection ищет направление по слову
func ParseDirection(s string) Direction {
	return directionStringToType[s]
}

func (d Direction) String() string {
	if val, ok := directionTypeToString[d]; ok {
		return val
	}
	return "NONE"
}
