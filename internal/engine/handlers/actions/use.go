package actions

import (
	"github.com/mgrabmueller/mudstuck/internal/domain"
	"github.com/mgrabmueller/mudstuck/internal/engine/handlers"
)

// HandleUse пока только осматривает объект: дверь можно "использовать",
// но состояние мира не меняется, и игрок видит ее текущее описание.
func HandleUse(ctx handlers.Context, target *domain.Entity) (handlers.Result, error) {
	var res handlers.Result
	res.MsgType = handlers.MsgInfo

	for _, src := range []string{target.Short, target.Long} {
		text, err := ctx.Render(src)
		if err != nil {
			return handlers.Result{}, err
		}
		res.Lines = append(res.Lines, text)
	}

	if target.IsLocked() {
		res.Lines = append(res.Lines, "Sie ist verriegelt.")
	}
	return res, nil
}
