package actions

import (
	"github.com/mgrabmueller/mudstuck/internal/command"
	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/internal/engine/handlers"
)

// HandleMove обрабатывает "go north" и "go <door>".
// В мире нет карты сторон света, поэтому направления никуда не ведут.
func HandleMove(ctx handlers.Context, cmd command.Command) (handlers.Result, error) {
	if _, ok := cmd.Direction(); ok {
		return handlers.Fail("In diese Richtung führt kein Weg."), nil
	}
	return handlers.WithObject(HandleMoveThrough)(ctx, cmd)
}

// HandleMoveThrough проводит игрока через дверь на другую сторону.
func HandleMoveThrough(ctx handlers.Context, target *domain.Entity) (handlers.Result, error) {
	door, ok := target.Door()
	if !ok {
		return handlers.Fail("Dort kann man nicht hindurchgehen."), nil
	}

	other, ok := door.Other(ctx.Location)
	if !ok {
		return handlers.Fail("Diese Tür ist nicht hier."), nil
	}

	if target.IsClosed() {
		return handlers.Fail("Die Tür ist geschlossen."), nil
	}

	return handlers.Result{MsgType: handlers.MsgInfo, MoveTo: other}, nil
}
