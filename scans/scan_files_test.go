package scans

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamlang"
	"github.com/reusee/lam/modes"
)

func TestScanFiles(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		scanFiles ScanFiles,
	) {
		dir := t.TempDir()
		var paths []string
		for i := range 20 {
			path := filepath.Join(dir, fmt.Sprintf("src%d.lam", i))
			err := os.WriteFile(path, fmt.Appendf(nil, "x%d = %d", i, i), 0644)
			if err != nil {
				t.Fatal(err)
			}
			paths = append(paths, path)
		}

		results, err := scanFiles(t.Context(), paths...)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != len(paths) {
			t.Fatalf("got %d results", len(results))
		}
		for i, path := range paths {
			tokens := results[path]
			if len(tokens) != 3 {
				t.Fatalf("%s: got %v", path, tokens)
			}
			if tokens[2].Kind != lamlang.TokenInt || tokens[2].Value != int64(i) {
				t.Fatalf("%s: got %v", path, tokens[2])
			}
		}

		// one bad file fails the whole batch
		bad := filepath.Join(dir, "bad.lam")
		if err := os.WriteFile(bad, []byte("¤"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err = scanFiles(t.Context(), append(paths, bad)...)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "bad.lam") {
			t.Fatalf("got %v", err)
		}
	})
}
