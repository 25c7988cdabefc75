package lamlang

import (
	"strings"
	"testing"
)

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat("f = \\g x.g(g(x)) + 3.14 * _max(n, 42);\n", 50)
	for b.Loop() {
		_, err := Tokenize(strings.NewReader(input))
		if err != nil {
			b.Fatal(err)
		}
	}
}
