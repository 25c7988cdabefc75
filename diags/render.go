// Package diags renders scan errors against their source for human eyes.
package diags

import (
	"fmt"
	"strings"

	"github.com/reusee/lam/lamconfigs"
	"github.com/reusee/lam/lamlang"
)

type Render func(source *lamlang.Source, errs lamlang.ScanErrors) string

func (Module) Render(
	maxErrors lamconfigs.MaxErrors,
) Render {
	return func(source *lamlang.Source, errs lamlang.ScanErrors) string {
		var sb strings.Builder

		shown := len(errs)
		if shown > int(maxErrors) {
			shown = int(maxErrors)
		}
		for _, err := range errs[:shown] {
			writeError(&sb, source, err)
		}
		if rest := len(errs) - shown; rest > 0 {
			fmt.Fprintf(&sb, "... and %d more\n", rest)
		}

		return sb.String()
	}
}

// writeError prints the message, the offending line, and a caret under the
// offending column. Positions are zero-based internally and printed one-based.
func writeError(sb *strings.Builder, source *lamlang.Source, err lamlang.ScanError) {
	name := "<input>"
	if source != nil && source.Name != "" {
		name = source.Name
	}
	fmt.Fprintf(sb, "unrecognized symbol %q at %s:%d:%d\n",
		err.Text, name, err.Pos.Line+1, err.Pos.Column+1)

	if source == nil {
		return
	}
	line, ok := source.Line(err.Pos.Line)
	if !ok {
		return
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	// the column is a byte offset into the line
	for i, r := range line {
		if i >= err.Pos.Column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for range runeWidth(r) {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^\n")
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
