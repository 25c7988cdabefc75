package diags

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamconfigs"
)

type Module struct {
	dscope.Module
	LamConfigs lamconfigs.Module
}
