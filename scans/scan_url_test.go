package scans

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/modes"
)

func TestScanURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/ok.lam":
			fmt.Fprint(w, "f = 1 + 2")
		case "/huge.lam":
			fmt.Fprint(w, strings.Repeat("x ", 100))
		default:
			http.NotFound(w, req)
		}
	}))
	defer server.Close()

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(lamconfigs.MaxSourceBytes(100)),
	).Call(func(
		scanURL ScanURL,
	) {
		tokens, err := scanURL(t.Context(), server.URL+"/ok.lam")
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 5 {
			t.Fatalf("got %v", tokens)
		}

		_, err = scanURL(t.Context(), server.URL+"/missing.lam")
		if err == nil {
			t.Fatal("expected error")
		}

		_, err = scanURL(t.Context(), server.URL+"/huge.lam")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "exceeds") {
			t.Fatalf("got %v", err)
		}
	})
}
