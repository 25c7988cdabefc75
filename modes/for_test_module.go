package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides ModeTest and the running test's T.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) Mode() Mode {
	return ModeTest
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
