package lamlang

import "strings"

// Source is a named piece of lam text with its lines pre-split for
// diagnostics.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the zero-based line n, or false when n is out of range.
func (s *Source) Line(n int) (string, bool) {
	if n < 0 || n >= len(s.Lines) {
		return "", false
	}
	return s.Lines[n], true
}

// Tokenize scans the source content against the default rule table.
func (s *Source) Tokenize() ([]Token, error) {
	return Tokenize(strings.NewReader(s.Content))
}
