package actions

import "github.com/mgrabmueller/mudstuck/internal/engine/handlers"

func HandleSleep(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Say("Du schläfst eine Weile. Als du aufwachst, hat sich nichts verändert."), nil
}
