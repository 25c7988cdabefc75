package lamlang

import "fmt"

type TokenKind uint8

// Kinds are declared in rule-table order, so the numeric value of a kind is
// also the index of its rule in Rules. TokenError has no rule: it tags the
// trailing catch-all slot, one past the last rule.
const (
	// numeric literals
	TokenFloat TokenKind = iota
	TokenInt
	TokenChar
	// comparisons
	TokenEqual
	TokenNeq
	TokenLeq
	TokenGeq
	TokenLess
	TokenGreater
	// arithmetic
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenAssign
	// logical
	TokenNot
	TokenAnd
	TokenOr
	// bitwise
	TokenBnot
	TokenBand
	TokenBor
	TokenXor
	// punctuation
	TokenLambda
	TokenComma
	TokenPeriod
	TokenSemicolon
	TokenLpar
	TokenRpar
	// identifiers
	TokenCall
	TokenBuiltin
	TokenName

	TokenError
)

var kindNames = [...]string{
	TokenFloat:     "Float",
	TokenInt:       "Int",
	TokenChar:      "Char",
	TokenEqual:     "Equal",
	TokenNeq:       "Neq",
	TokenLeq:       "Leq",
	TokenGeq:       "Geq",
	TokenLess:      "Less",
	TokenGreater:   "Greater",
	TokenAdd:       "Add",
	TokenSub:       "Sub",
	TokenMul:       "Mul",
	TokenDiv:       "Div",
	TokenAssign:    "Assign",
	TokenNot:       "Not",
	TokenAnd:       "And",
	TokenOr:        "Or",
	TokenBnot:      "Bnot",
	TokenBand:      "Band",
	TokenBor:       "Bor",
	TokenXor:       "Xor",
	TokenLambda:    "Lambda",
	TokenComma:     "Comma",
	TokenPeriod:    "Period",
	TokenSemicolon: "Semicolon",
	TokenLpar:      "Lpar",
	TokenRpar:      "Rpar",
	TokenCall:      "Call",
	TokenBuiltin:   "Builtin",
	TokenName:      "Name",
	TokenError:     "Error",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is one scanned lexeme. Text is the raw matched substring; Value is
// the parsed payload, at most one per kind: float64 for Float, int64 for Int
// and Char, string for Call, Builtin and Name, nil for everything else.
type Token struct {
	Kind  TokenKind
	Text  string
	Value any
	Pos   Pos
}

func (t Token) String() string {
	if t.Value == nil {
		return t.Kind.String()
	}
	return fmt.Sprintf("%v(%v)", t.Kind, t.Value)
}
