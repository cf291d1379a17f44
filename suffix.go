package pagination

import (
	"strconv"
	"strings"
)

// Placeholder marks where the page number goes in a suffix template.
// It is matched without regard to ASCII case.
const Placeholder = "%number%"

// Template is a parsed pagination suffix such as "/page-%number%.html".
// The zero value is not a valid template, use ParseSuffix.
type Template struct {
	value  string
	prefix string
	suffix string
}

// ParseSuffix parses a raw suffix as stored by an administrator.
// It returns false when the suffix is empty or has no placeholder,
// which means pagination rewriting is inactive.
func ParseSuffix(raw string) (Template, bool) {
	trimmed := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "/"))
	if trimmed == "" {
		return Template{}, false
	}

	value := "/" + trimmed
	idx := indexFold(value, Placeholder)
	if idx < 0 {
		return Template{}, false
	}

	return Template{
		value:  value,
		prefix: value[:idx],
		suffix: value[idx+len(Placeholder):],
	}, true
}

// MustParseSuffix is like ParseSuffix but panics on an inactive suffix.
func MustParseSuffix(raw string) Template {
	t, ok := ParseSuffix(raw)
	if !ok {
		panic("pagination: invalid suffix template " + strconv.Quote(raw))
	}
	return t
}

// NormalizeSuffix validates administrator input before it is stored.
// Empty input is accepted and disables the custom scheme.
func NormalizeSuffix(input string) (string, error) {
	suffix := strings.TrimSpace(input)
	if suffix == "" {
		return "", nil
	}

	suffix = "/" + strings.TrimLeft(suffix, "/")
	if indexFold(suffix, Placeholder) < 0 {
		return suffix, newMissingPlaceholderError(suffix)
	}
	return suffix, nil
}

func (t Template) String() string { return t.value }

// Prefix is the text before the first placeholder, including the leading "/".
func (t Template) Prefix() string { return t.prefix }

// Suffix is the text after the first placeholder.
func (t Template) Suffix() string { return t.suffix }

// IsZero reports whether t was not produced by ParseSuffix.
func (t Template) IsZero() bool { return t.value == "" }

// Render substitutes page into the first placeholder. Any later
// placeholder is kept literally so that rendered URLs match the
// compiled custom pattern.
func (t Template) Render(page int) string {
	return t.prefix + strconv.Itoa(page) + t.suffix
}

// IsBareNumber reports whether the template is only the page number,
// i.e. "/%number%" or "/%number%/". Such URLs collide with multi-page
// content and get special treatment when resolving redirects.
func (t Template) IsBareNumber() bool {
	return t.prefix == "/" && strings.TrimRight(t.suffix, "/") == ""
}

// indexFold returns the byte index of the first ASCII case-insensitive
// occurrence of sub in s, or -1.
func indexFold(s, sub string) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && equalFoldASCII(s[:len(prefix)], prefix)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
