package domain

import (
	"github.com/google/uuid"
)

// EntityID - внутренний идентификатор сущности.
//
// Под капотом это UUID v4: идентификатор непрозрачен для шаблонов и
// никогда не показывается игроку. Шаблоны ссылаются на сущности только
// через Name.
type EntityID uuid.UUID

// NilEntityID - нулевой идентификатор, аналог nil.
var NilEntityID EntityID

// NewEntityID создает новый случайный идентификатор.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

// ParseEntityID разбирает каноническое строковое представление UUID.
func ParseEntityID(s string) (EntityID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilEntityID, err
	}
	return EntityID(u), nil
}

// IsNil возвращает true для нулевого идентификатора.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String для логов
func (id EntityID) String() string {
	return uuid.UUID(id).String()
}
