package pagination

import "strings"

// Rule pairs a route match pattern with the target it resolves to.
type Rule struct {
	Pattern string
	Target  string
}

// RuleTable is an ordered list of rules. The host router uses the first
// rule that matches, so order is significant.
type RuleTable []Rule

// Patterns returns the match patterns in table order.
func (t RuleTable) Patterns() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Pattern
	}
	return out
}

// Clone returns a copy of t.
func (t RuleTable) Clone() RuleTable {
	if t == nil {
		return nil
	}
	out := make(RuleTable, len(t))
	copy(out, t)
	return out
}

// TransformRules rewrites every rule pattern that matches legacy pagination
// so it matches the custom suffix instead. The result has the same length
// and order as table, targets are never changed and rules without a legacy
// fragment are copied verbatim.
func (p *Patterns) TransformRules(table RuleTable) RuleTable {
	if p == nil {
		return table.Clone()
	}

	rw := newRuleRewriter(p.template, p.legacyBase)
	out := make(RuleTable, len(table))
	for i, rule := range table {
		out[i] = Rule{
			Pattern: rw.rewrite(rule.Pattern),
			Target:  rule.Target,
		}
	}
	return out
}

// ruleRewriter holds the route-pattern fragments for one template.
type ruleRewriter struct {
	home   string
	nested string
	prefix string
	suffix string
}

func newRuleRewriter(t Template, base string) ruleRewriter {
	return ruleRewriter{
		home:   base + "/?",
		nested: "/" + base + "/?",
		prefix: escapeFragment(strings.TrimLeft(t.Prefix(), "/")),
		suffix: escapeFragment(t.Suffix()),
	}
}

func (rw ruleRewriter) rewrite(pattern string) string {
	if hasPrefixFold(pattern, rw.home) {
		return rw.prefix + rw.tail(pattern[len(rw.home):])
	}

	if idx := indexFold(pattern, rw.nested); idx >= 0 {
		head := pattern[:idx]
		rest := pattern[idx+len(rw.nested):]
		return head + "/" + rw.prefix + rw.tail(rest)
	}

	return pattern
}

// tail turns the remainder of a legacy pattern, usually the page capture
// group plus "/?$", into the custom suffix with an end anchor.
func (rw ruleRewriter) tail(rest string) string {
	if strings.HasSuffix(rest, "/?$") {
		rest = strings.TrimSuffix(rest, "/?$")
	} else {
		rest = strings.TrimSuffix(rest, "$")
	}
	return rest + rw.suffix + "$"
}
