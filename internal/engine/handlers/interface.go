package handlers

import (
	"github.com/mgrabmueller/mudstuck/internal/command"
	"github.com/mgrabmueller/mudstuck/internal/domain"
)

// Типы сообщений результата
const (
	MsgInfo  = "INFO"
	MsgError = "ERROR"
)

// Context передает хендлеру состояние мира.
// Мир только читается; перемещение игрока хендлер возвращает в Result.
type Context struct {
	World    *domain.World
	Location domain.EntityID // где сейчас игрок

	// Render вычисляет шаблон описания в текущем мире
	Render func(src string) (string, error)
}

// Here - сущность, в которой находится игрок
func (ctx Context) Here() (*domain.Entity, bool) {
	return ctx.World.Entity(ctx.Location)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Lines   []string // абзацы текста, перенос строк делает сервис
	MsgType string

	// MoveTo - новое местоположение игрока, NilEntityID - остаться на месте
	MoveTo domain.EntityID
}

// HandlerFunc - это контракт для любой команды (MOVE, SLEEP, etc).
type HandlerFunc func(ctx Context, cmd command.Command) (Result, error)

// Say - результат из одного информационного сообщения
func Say(msg string) Result {
	return Result{Lines: []string{msg}, MsgType: MsgInfo}
}

// Fail - результат из одного сообщения об ошибке игрока
func Fail(msg string) Result {
	return Result{Lines: []string{msg}, MsgType: MsgError}
}

// Unknown - ответ на команду, которую движок не умеет выполнять
func Unknown() Result {
	return Fail("I don't know how to do that.")
}
