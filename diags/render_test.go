package diags

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/lamlang"
	"github.com/reusee/lam/modes"
)

func scanErrs(t *testing.T, source *lamlang.Source) lamlang.ScanErrors {
	t.Helper()
	_, err := source.Tokenize()
	if err == nil {
		t.Fatal("expected scan errors")
	}
	var errs lamlang.ScanErrors
	if !errors.As(err, &errs) {
		t.Fatalf("got %v", err)
	}
	return errs
}

func TestRender(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		render Render,
	) {
		source := lamlang.NewSource("test.lam", "f = 1\n  g(¤ ) 2")
		out := render(source, scanErrs(t, source))
		if !strings.Contains(out, `unrecognized symbol "¤" at test.lam:2:5`) {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "\n  g(¤ ) 2\n    ^\n") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestRenderWideRunes(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		render Render,
	) {
		// the caret accounts for double-width runes before the column
		source := lamlang.NewSource("", "你 = ¤x")
		out := render(source, scanErrs(t, source))
		if !strings.Contains(out, "<input>:1:7") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "\n你 = ¤x\n     ^\n") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestRenderCap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(lamconfigs.MaxErrors(2)),
	).Call(func(
		render Render,
	) {
		source := lamlang.NewSource("test.lam", "¤ @@ ## $$")
		out := render(source, scanErrs(t, source))
		if got := strings.Count(out, "^"); got != 2 {
			t.Fatalf("expected 2 carets, got %d in %q", got, out)
		}
		if !strings.Contains(out, "... and 2 more") {
			t.Fatalf("got %q", out)
		}
	})
}
