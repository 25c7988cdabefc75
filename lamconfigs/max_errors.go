package lamconfigs

import (
	"github.com/reusee/lam/configs"
	"github.com/reusee/lam/vars"
)

// MaxErrors caps how many scan errors a report renders in full. The rest
// collapse into a summary line.
type MaxErrors int

const defaultMaxErrors = 20

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	if n := vars.FirstNonZero(
		configs.First[int](loader, "max_errors"),
		configs.First[int](loader, "max_scan_errors"),
	); n > 0 {
		return MaxErrors(n)
	}
	return defaultMaxErrors
}
