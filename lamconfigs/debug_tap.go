package lamconfigs

import (
	"os"

	"github.com/reusee/lam/configs"
	"github.com/reusee/lam/vars"
)

// DebugTap routes scan results through the starlark tap when set.
type DebugTap bool

func (Module) DebugTap(
	loader configs.Loader,
) DebugTap {
	if configs.First[bool](loader, "debug_tap") {
		return true
	}
	return DebugTap(vars.StrToBool(os.Getenv("LAM_DEBUG_TAP")))
}
