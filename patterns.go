package pagination

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultLegacyBase is the segment used by the legacy "/page/N/" scheme.
const DefaultLegacyBase = "page"

const (
	digitsAny     = `[0-9]+`
	digitsCapture = `([0-9]+)`
)

// Matcher recognizes a pagination fragment at the end of a path.
type Matcher struct {
	capture *regexp.Regexp
	any     *regexp.Regexp
}

// Match reports whether path ends with the fragment, for any page number.
func (m Matcher) Match(path string) bool {
	return m.any != nil && m.any.MatchString(path)
}

// Page returns the page number captured from the fragment at the end of path.
// Numbers too large for an int are capped at math.MaxInt.
func (m Matcher) Page(path string) (int, bool) {
	if m.capture == nil {
		return 0, false
	}
	groups := m.capture.FindStringSubmatch(path)
	if len(groups) < 2 {
		return 0, false
	}
	return parsePage(groups[1]), true
}

// Strip replaces the fragment at the end of path with a single "/".
func (m Matcher) Strip(path string) string {
	if m.any == nil {
		return path
	}
	return m.any.ReplaceAllLiteralString(path, "/")
}

// Expr returns the regular expression source in capture or match-only mode.
func (m Matcher) Expr(capture bool) string {
	if capture {
		if m.capture == nil {
			return ""
		}
		return m.capture.String()
	}
	if m.any == nil {
		return ""
	}
	return m.any.String()
}

// Patterns holds the compiled matchers for one template and legacy base.
// A nil *Patterns represents the inactive configuration and every
// method on it is a passthrough.
type Patterns struct {
	template   Template
	legacyBase string
	legacy     Matcher
	custom     Matcher
}

// Compile builds the legacy and custom matchers. An empty legacyBase
// falls back to DefaultLegacyBase. A zero template yields nil.
func Compile(t Template, legacyBase string) *Patterns {
	if t.IsZero() {
		return nil
	}

	base := normalizeBase(legacyBase)
	prefix := escapeFragment(strings.TrimLeft(t.Prefix(), "/"))
	suffix := escapeFragment(strings.TrimRight(t.Suffix(), "/"))
	legacy := `/` + escapeFragment(base) + `/`

	return &Patterns{
		template:   t,
		legacyBase: base,
		legacy: Matcher{
			capture: regexp.MustCompile(`(?i)` + legacy + digitsCapture + `/?$`),
			any:     regexp.MustCompile(`(?i)` + legacy + digitsAny + `/?$`),
		},
		custom: Matcher{
			capture: regexp.MustCompile(`(?i)/` + prefix + digitsCapture + suffix + `/?$`),
			any:     regexp.MustCompile(`(?i)/` + prefix + digitsAny + suffix + `/?$`),
		},
	}
}

// Active reports whether custom pagination is in effect.
func (p *Patterns) Active() bool { return p != nil }

// Template returns the suffix template the patterns were compiled from.
func (p *Patterns) Template() Template {
	if p == nil {
		return Template{}
	}
	return p.template
}

// LegacyBase returns the normalized legacy base segment.
func (p *Patterns) LegacyBase() string {
	if p == nil {
		return ""
	}
	return p.legacyBase
}

// Legacy returns the matcher for "/<base>/N/" fragments.
func (p *Patterns) Legacy() Matcher {
	if p == nil {
		return Matcher{}
	}
	return p.legacy
}

// Custom returns the matcher for fragments built from the template.
func (p *Patterns) Custom() Matcher {
	if p == nil {
		return Matcher{}
	}
	return p.custom
}

// escapeFragment quotes regexp metacharacters and turns every "/"
// into an optional separator.
func escapeFragment(s string) string {
	parts := strings.Split(s, "/")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return strings.Join(parts, "/?")
}

func normalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultLegacyBase
	}
	return base
}

// parsePage saturates at math.MaxInt, digits never carry a sign.
func parsePage(digits string) int {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
