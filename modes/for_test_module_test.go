package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		injected *testing.T,
		mode Mode,
	) {
		if mode != ModeTest {
			t.Fatalf("got %v", mode)
		}
		if injected != t {
			t.Fatal("expected the running test's T")
		}
	})
}
