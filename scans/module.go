package scans

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lam/debugs"
	"github.com/reusee/lam/diags"
	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/logs"
	"github.com/reusee/lam/nets"
)

type Module struct {
	dscope.Module
	Debugs     debugs.Module
	Diags      diags.Module
	LamConfigs lamconfigs.Module
	Logs       logs.Module
	Nets       nets.Module
}
