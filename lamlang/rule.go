package lamlang

import (
	"strconv"
	"unicode/utf8"
)

// Rule pairs a pattern with the constructor for its token kind. Pattern
// matches the lexeme body only, with no surrounding whitespace and no
// capturing groups of its own. Construct must accept every string Pattern
// can match; a pattern that can produce text its constructor cannot handle
// (an out-of-range digit run, say) is a bug in the table, not a scan-time
// error.
type Rule struct {
	Kind      TokenKind
	Pattern   string
	Construct func(text string) Token
}

func structural(kind TokenKind) func(string) Token {
	return func(string) Token {
		return Token{Kind: kind}
	}
}

// Rules is the lexical grammar. Order is priority: when several rules could
// match at the same position, the earlier entry wins, so specific patterns
// must precede the general ones they overlap with. Float comes before Int
// and the two-character comparisons before their one-character prefixes;
// Call and Builtin come before Name so an identifier touching a '(' is
// never a bare name.
var Rules = []Rule{
	// numeric literals
	{Kind: TokenFloat, Pattern: `[[:digit:]]*\.[[:digit:]]+`, Construct: func(text string) Token {
		value, _ := strconv.ParseFloat(text, 64)
		return Token{Kind: TokenFloat, Value: value}
	}},
	{Kind: TokenInt, Pattern: `[[:digit:]]+`, Construct: func(text string) Token {
		value, _ := strconv.ParseInt(text, 10, 64)
		return Token{Kind: TokenInt, Value: value}
	}},
	{Kind: TokenChar, Pattern: `'[[:alpha:]\n]'`, Construct: func(text string) Token {
		r, _ := utf8.DecodeRuneInString(text[1:])
		return Token{Kind: TokenChar, Value: int64(r)}
	}},

	// comparisons
	{Kind: TokenEqual, Pattern: `==`, Construct: structural(TokenEqual)},
	{Kind: TokenNeq, Pattern: `!=`, Construct: structural(TokenNeq)},
	{Kind: TokenLeq, Pattern: `<=`, Construct: structural(TokenLeq)},
	{Kind: TokenGeq, Pattern: `>=`, Construct: structural(TokenGeq)},
	{Kind: TokenLess, Pattern: `<`, Construct: structural(TokenLess)},
	{Kind: TokenGreater, Pattern: `>`, Construct: structural(TokenGreater)},

	// arithmetic
	{Kind: TokenAdd, Pattern: `\+`, Construct: structural(TokenAdd)},
	{Kind: TokenSub, Pattern: `-`, Construct: structural(TokenSub)},
	{Kind: TokenMul, Pattern: `\*`, Construct: structural(TokenMul)},
	{Kind: TokenDiv, Pattern: `/`, Construct: structural(TokenDiv)},
	{Kind: TokenAssign, Pattern: `=`, Construct: structural(TokenAssign)},

	// logical
	{Kind: TokenNot, Pattern: `!`, Construct: structural(TokenNot)},
	{Kind: TokenAnd, Pattern: `&&`, Construct: structural(TokenAnd)},
	{Kind: TokenOr, Pattern: `\|\|`, Construct: structural(TokenOr)},

	// bitwise
	{Kind: TokenBnot, Pattern: `~`, Construct: structural(TokenBnot)},
	{Kind: TokenBand, Pattern: `&`, Construct: structural(TokenBand)},
	{Kind: TokenBor, Pattern: `\|`, Construct: structural(TokenBor)},
	{Kind: TokenXor, Pattern: `\^`, Construct: structural(TokenXor)},

	// punctuation
	{Kind: TokenLambda, Pattern: `\\`, Construct: structural(TokenLambda)},
	{Kind: TokenComma, Pattern: `,`, Construct: structural(TokenComma)},
	{Kind: TokenPeriod, Pattern: `\.`, Construct: structural(TokenPeriod)},
	{Kind: TokenSemicolon, Pattern: `;`, Construct: structural(TokenSemicolon)},
	{Kind: TokenLpar, Pattern: `\(`, Construct: structural(TokenLpar)},
	{Kind: TokenRpar, Pattern: `\)`, Construct: structural(TokenRpar)},

	// identifiers
	{Kind: TokenCall, Pattern: `[[:alpha:]][[:word:]]*\(`, Construct: func(text string) Token {
		return Token{Kind: TokenCall, Value: text[:len(text)-1]}
	}},
	{Kind: TokenBuiltin, Pattern: `_[[:alpha:]][[:word:]]*\(`, Construct: func(text string) Token {
		return Token{Kind: TokenBuiltin, Value: text[1 : len(text)-1]}
	}},
	{Kind: TokenName, Pattern: `[[:alpha:]][[:word:]]*`, Construct: func(text string) Token {
		return Token{Kind: TokenName, Value: text}
	}},
}
