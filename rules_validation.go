package pagination

import (
	"regexp"
	"strings"
)

// ValidateRules checks a rule table for patterns that can never match in a
// first-match-wins router and for patterns that do not compile. It is meant
// to run on the output of TransformRules, where a rewritten pattern can
// collide with an existing one.
func ValidateRules(table RuleTable) []error {
	var errs []error

	seen := make(map[string]int, len(table))
	for i, rule := range table {
		key := strings.TrimSpace(rule.Pattern)
		if first, ok := seen[key]; ok {
			errs = append(errs, newDuplicateRuleError(rule.Pattern, first, i))
			continue
		}
		seen[key] = i

		if _, err := regexp.Compile(rule.Pattern); err != nil {
			errs = append(errs, newInvalidRuleError(err, rule.Pattern, i))
		}
	}

	return errs
}
