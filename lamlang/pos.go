package lamlang

import "fmt"

// Pos locates a token or scan error in its source: a zero-based line index
// and the zero-based byte offset of the first character within that line.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}
