package scans

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lam/modes"
)

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}
