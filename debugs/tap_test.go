package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamlang"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "scan tokens", map[string]any{
			"source": "test.lam",
			"tokens": []lamlang.Token{
				{Kind: lamlang.TokenName, Text: "f", Value: "f"},
			},
		})
	})
}
