package handlers

import (
	"fmt"

	"github.com/mgrabmueller/mudstuck/internal/command"
	"github.com/mgrabmueller/mudstuck/internal/domain"
)

// ObjectHandlerFunc - хендлер, которому нужна сущность-объект команды
type ObjectHandlerFunc func(ctx Context, target *domain.Entity) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужен объект (SLEEP)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// Target возвращает имя объекта команды: прямой объект, а если его нет -
// косвенный ("go to door").
func Target(cmd command.Command) domain.Name {
	if len(cmd.Direct) > 0 {
		return cmd.Direct
	}
	return cmd.Indirect
}

// NotFound - ответ на имя, которого нет в мире
func NotFound(name domain.Name) Result {
	return Fail(fmt.Sprintf("Es gibt nichts, was %s heißt.", name))
}

// WithObject берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя поиск сущности по имени.
func WithObject(handler ObjectHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd command.Command) (Result, error) {
		name := Target(cmd)

		// 1. Объект обязателен
		if len(name) == 0 {
			return Fail(fmt.Sprintf("%s what?", cmd.Verb)), nil
		}

		// 2. Поиск в мире (имя в шаблонах и в командах одно и то же)
		id, ok := ctx.World.Lookup(name)
		if !ok {
			return NotFound(name), nil
		}
		target, ok := ctx.World.Entity(id)
		if !ok {
			return Result{}, fmt.Errorf("entity %s indexed but missing", id)
		}

		// 3. Вызов чистой логики
		return handler(ctx, target)
	}
}

// WithEmptyObject - обертка для команд без объекта (SLEEP)
func WithEmptyObject(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ command.Command) (Result, error) {
		return handler(ctx)
	}
}
