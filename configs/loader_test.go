package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
source?: string
limits?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var source string
	if err := loader.AssignFirst("source", &source); err != nil {
		t.Fatal(err)
	}
	if source != "main.lam" {
		t.Fatalf("got %q", source)
	}

	var limits []int
	if err := loader.AssignFirst("limits", &limits); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", limits); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("absent", &limits)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var sources []string
	for value, err := range loader.IterCueValues("source") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		sources = append(sources, s)
	}
	if str := fmt.Sprintf("%v", sources); str != "[main.lam lib.lam]" {
		t.Fatalf("got %q", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"test2.cue",
		"test.cue",
	}, testSchema)

	// earlier files win
	if got := First[string](loader, "source"); got != "lib.lam" {
		t.Fatalf("got %q", got)
	}
	// absent paths decode to the zero value
	if got := First[int](loader, "absent"); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var sources []string
	for source := range All[string](loader, "source") {
		sources = append(sources, source)
	}
	if str := fmt.Sprintf("%v", sources); str != "[main.lam lib.lam]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{"bad.cue"}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"does_not_exist.cue"}, testSchema)
	var str string
	if err := loader.AssignFirst("source", &str); err == nil {
		t.Fatal("should error")
	}
}
