package lamlang

import (
	"fmt"
	"regexp"
	"strings"
)

// catchAll claims any run of non-whitespace characters no rule matched.
// Runs tagged with it become ScanErrors.
const catchAll = `\S+`

// Pattern is a rule table compiled into a single alternation,
// (rule0)|(rule1)|...|(ruleN)|(\S+), one capturing group per rule plus the
// trailing catch-all group. Compilation happens once; the result is
// immutable and safe for concurrent use by independent scans.
type Pattern struct {
	re    *regexp.Regexp
	rules []Rule
}

// Compile combines rules into one Pattern. Note regexp's default (Perl-like)
// alternation is what makes the rule ordering meaningful: at a given
// position the first listed group that matches wins, not the longest.
// CompilePOSIX would break the table's priorities.
func Compile(rules []Rule) (*Pattern, error) {
	var b strings.Builder
	for _, rule := range rules {
		b.WriteString("(")
		b.WriteString(rule.Pattern)
		b.WriteString(")|")
	}
	b.WriteString("(")
	b.WriteString(catchAll)
	b.WriteString(")")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}
	// one group per rule plus the catch-all; more means some rule pattern
	// contains capturing groups of its own, which would shift the
	// group-to-rule mapping
	if n := re.NumSubexp(); n != len(rules)+1 {
		return nil, fmt.Errorf("rule patterns must not contain capturing groups: %d groups for %d rules", n, len(rules))
	}

	return &Pattern{
		re:    re,
		rules: rules,
	}, nil
}

func MustCompile(rules []Rule) *Pattern {
	p, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return p
}

type lineMatch struct {
	rule  int // index into Pattern.rules; len(rules) means the catch-all
	start int
	end   int
}

// matchLine finds every non-overlapping match in one line, left to right,
// and resolves which rule produced each by locating the one capturing group
// that participated.
func (p *Pattern) matchLine(line string) []lineMatch {
	var matches []lineMatch
	for _, group := range p.re.FindAllStringSubmatchIndex(line, -1) {
		// group[0:2] is the whole match; group[2i:2i+2] is capture i
		for i := 1; i*2 < len(group); i++ {
			if group[i*2] < 0 {
				continue
			}
			matches = append(matches, lineMatch{
				rule:  i - 1,
				start: group[i*2],
				end:   group[i*2+1],
			})
			break
		}
	}
	return matches
}
