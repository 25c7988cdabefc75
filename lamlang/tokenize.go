// Package lamlang scans lam source text into a flat, positioned token list
// for later parsing stages. The lexical grammar is a declarative rule table
// (Rules) compiled once into a single alternation; scanning either succeeds
// with every token or fails with every unrecognized symbol, never a mix, so
// one pass surfaces all lexical problems at once.
package lamlang

import (
	"bufio"
	"io"
)

// lines longer than this fail the scan with bufio.ErrTooLong
const maxLineBytes = 1 << 20

var defaultPattern = MustCompile(Rules)

// Tokenize scans r line by line against the default rule table. On success
// it returns every token in source order. If any run of non-whitespace
// characters matches no rule, scanning still continues to the end of the
// input and the error is a ScanErrors carrying every such run; no tokens
// are returned then. Errors from r itself are returned as-is.
func Tokenize(r io.Reader) ([]Token, error) {
	return defaultPattern.Tokenize(r)
}

func (p *Pattern) Tokenize(r io.Reader) ([]Token, error) {
	var tokens []Token
	var errs ScanErrors

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		text := scanner.Text()
		for _, m := range p.matchLine(text) {
			pos := Pos{Line: line, Column: m.start}
			lexeme := text[m.start:m.end]

			if m.rule == len(p.rules) {
				errs = append(errs, ScanError{
					Pos:  pos,
					Text: lexeme,
				})
				continue
			}

			token := p.rules[m.rule].Construct(lexeme)
			token.Text = lexeme
			token.Pos = pos
			tokens = append(tokens, token)
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}
