package lamlang

import (
	"fmt"
	"strings"
)

// ScanError is one maximal run of non-whitespace characters that no lexical
// rule recognizes. Adjacent unseparated characters belong to the same run,
// so one run reports as one error.
type ScanError struct {
	Pos  Pos
	Text string
}

func (s ScanError) Error() string {
	return fmt.Sprintf("unrecognized symbol %q at %s", s.Text, s.Pos)
}

// ScanErrors is the failure side of a scan: every unrecognized run in the
// input, ordered by line then by column.
type ScanErrors []ScanError

func (s ScanErrors) Error() string {
	switch len(s) {
	case 0:
		return "no scan errors"
	case 1:
		return s[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d unrecognized symbols", len(s))
	for _, e := range s {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}
