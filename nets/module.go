package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/logs"
)

type Module struct {
	dscope.Module
	LamConfigs lamconfigs.Module
	Logs       logs.Module
}
