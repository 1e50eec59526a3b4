package syntax

import (
	"fmt"
	"regexp"
)

// Rule is one pattern of a highlight query: text matching Pattern is tagged
// with Capture. When the pattern contains a capturing group, only group 1 is
// tagged; otherwise the whole match is.
//
// Declaration order is significant: when two rules produce spans with the
// same start offset, the earlier-declared rule wins.
type Rule struct {
	Capture string
	Pattern string
}

// Grammar is a compiled highlight query for one language. It implements
// Engine and is safe for concurrent use once compiled.
type Grammar struct {
	id    string
	rules []compiledRule
}

type compiledRule struct {
	capture string
	re      *regexp.Regexp
}

// CompileQuery compiles a declaration-ordered rule set into a Grammar.
func CompileQuery(id string, rules []Rule) (*Grammar, error) {
	g := &Grammar{id: id, rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling %q rule %d (%s): %w", id, i, r.Capture, err)
		}
		g.rules = append(g.rules, compiledRule{capture: r.Capture, re: re})
	}
	return g, nil
}

// MustCompileQuery is CompileQuery for rule sets known valid at build time.
func MustCompileQuery(id string, rules []Rule) *Grammar {
	g, err := CompileQuery(id, rules)
	if err != nil {
		panic(err)
	}
	return g
}

// ID returns the grammar identifier the query was compiled for.
func (g *Grammar) ID() string { return g.id }

// Captures implements Engine. Rules run in declaration order over the whole
// source, so ties at the same start offset resolve to the earlier rule once
// the classifier's stable sort has run.
func (g *Grammar) Captures(src string) []Capture {
	var out []Capture
	for _, rule := range g.rules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(src, -1) {
			start, end := m[0], m[1]
			if len(m) >= 4 && m[2] >= 0 {
				start, end = m[2], m[3]
			}
			out = append(out, Capture{Start: start, End: end, Name: rule.capture})
		}
	}
	return out
}
