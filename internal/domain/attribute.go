package domain

import "strings"

// AttributeKind - числовой тип атрибута
type AttributeKind uint8

const (
	AttributeUnknown AttributeKind = iota
	AttributeLockable
	AttributeClosable
	AttributeDoorlike
	AttributeRoomlike
	AttributeCharacterlike
)

var attributeKindToString = map[AttributeKind]string{
	AttributeLockable:      "LOCKABLE",
	AttributeClosable:      "CLOSABLE",
	AttributeDoorlike:      "DOORLIKE",
	AttributeRoomlike:      "ROOMLIKE",
	AttributeCharacterlike: "CHARACTERLIKE",
}

var attributeStringToKind = map[string]AttributeKind{
	"LOCKABLE":      AttributeLockable,
	"CLOSABLE":      AttributeClosable,
	"DOORLIKE":      AttributeDoorlike,
	"ROOMLIKE":      AttributeRoomlike,
	"CHARACTERLIKE": AttributeCharacterlike,
}

// String реализует интерфейс Stringer (для логов)
func (k AttributeKind) String() string {
	if val, ok := attributeKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAttributeKind конвертирует строку в AttributeKind без учета регистра
func ParseAttributeKind(s string) AttributeKind {
	if val, ok := attributeStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return AttributeUnknown
}

// Attribute - факт или свойство сущности. Набор вариантов закрыт:
// реализовать интерфейс можно только внутри пакета domain.
type Attribute interface {
	Kind() AttributeKind
	attribute()
}

// Lockable - сущность можно запереть; Locked - заперта ли она сейчас.
type Lockable struct {
	Locked bool
}

// Closable - сущность можно закрыть; Closed - закрыта ли она сейчас.
type Closable struct {
	Closed bool
}

// Doorlike - проход между двумя сущностями (обычно комнатами).
type Doorlike struct {
	Endpoints [2]EntityID
}

// Roomlike - место, в котором находятся другие сущности.
type Roomlike struct {
	Entities []EntityID
}

// Characterlike - персонаж с инвентарем.
type Characterlike struct {
	Inventory []EntityID
}

func (Lockable) Kind() AttributeKind      { return AttributeLockable }
func (Closable) Kind() AttributeKind      { return AttributeClosable }
func (Doorlike) Kind() AttributeKind      { return AttributeDoorlike }
func (Roomlike) Kind() AttributeKind      { return AttributeRoomlike }
func (Characterlike) Kind() AttributeKind { return AttributeCharacterlike }

func (Lockable) attribute()      {}
func (Closable) attribute()      {}
func (Doorlike) attribute()      {}
func (Roomlike) attribute()      {}
func (Characterlike) attribute() {}

// Other возвращает противоположный конец двери.
// Второй результат false, если from не является ни одним из концов.
func (d Doorlike) Other(from EntityID) (EntityID, bool) {
	switch from {
	case d.Endpoints[0]:
		return d.Endpoints[1], true
	case d.Endpoints[1]:
		return d.Endpoints[0], true
	}
	return NilEntityID, false
}
