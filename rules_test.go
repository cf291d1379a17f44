package pagination_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/goliatone/go-pagination"
)

func wordpressRules() pagination.RuleTable {
	return pagination.RuleTable{
		{Pattern: "category/(.+?)/feed/(feed|rdf|rss|rss2|atom)/?$", Target: "index.php?category_name=$matches[1]&feed=$matches[2]"},
		{Pattern: "category/(.+?)/page/?([0-9]{1,})/?$", Target: "index.php?category_name=$matches[1]&paged=$matches[2]"},
		{Pattern: "category/(.+?)/?$", Target: "index.php?category_name=$matches[1]"},
		{Pattern: "page/?([0-9]{1,})/?$", Target: "index.php?&paged=$matches[1]"},
		{Pattern: "search/(.+)/Page/?([0-9]{1,})/?$", Target: "index.php?s=$matches[1]&paged=$matches[2]"},
		{Pattern: "([^/]+)/page/?([0-9]{1,})/?$", Target: "index.php?name=$matches[1]&paged=$matches[2]"},
		{Pattern: "([^/]+)(?:/([0-9]+))?/?$", Target: "index.php?name=$matches[1]&page=$matches[2]"},
	}
}

func TestTransformRulesHomePagination(t *testing.T) {
	p := compile(t, "/page-%number%/")
	table := pagination.RuleTable{
		{Pattern: "feed/(feed|rdf|rss|rss2|atom)/?$", Target: "index.php?&feed=$matches[1]"},
		{Pattern: "page/?([0-9]{1,10})/?$", Target: "index.php?&paged=$matches[1]"},
		{Pattern: "comments/?$", Target: "index.php?&withcomments=1"},
	}

	out := p.TransformRules(table)

	require.Len(t, out, 3)
	assert.Equal(t, table[0], out[0])
	assert.Equal(t, pagination.Rule{Pattern: "page-([0-9]{1,10})/?$", Target: "index.php?&paged=$matches[1]"}, out[1])
	assert.Equal(t, table[2], out[2])
}

func TestTransformRulesNestedPagination(t *testing.T) {
	p := compile(t, "/page-%number%.html")
	out := p.TransformRules(wordpressRules())

	want := []string{
		"category/(.+?)/feed/(feed|rdf|rss|rss2|atom)/?$",
		`category/(.+?)/page-([0-9]{1,})\.html$`,
		"category/(.+?)/?$",
		`page-([0-9]{1,})\.html$`,
		`search/(.+)/page-([0-9]{1,})\.html$`,
		`([^/]+)/page-([0-9]{1,})\.html$`,
		"([^/]+)(?:/([0-9]+))?/?$",
	}
	assert.Equal(t, want, out.Patterns())
}

func TestTransformRulesNestedTemplate(t *testing.T) {
	p := compile(t, "/p/%number%/")
	out := p.TransformRules(pagination.RuleTable{
		{Pattern: "tag/([^/]+)/page/?([0-9]{1,})/?$", Target: "index.php?tag=$matches[1]&paged=$matches[2]"},
	})

	assert.Equal(t, "tag/([^/]+)/p/?([0-9]{1,})/?$", out[0].Pattern)
}

func TestTransformRulesInvariants(t *testing.T) {
	table := wordpressRules()
	original := table.Clone()
	p := compile(t, "/p%number%/")

	out := p.TransformRules(table)

	require.Len(t, out, len(table))
	assert.Equal(t, original, table, "input must not be modified")
	for i := range table {
		assert.Equal(t, table[i].Target, out[i].Target, "target %d", i)
		if !containsLegacy(table[i].Pattern) {
			assert.Equal(t, table[i].Pattern, out[i].Pattern, "rule %d should be untouched", i)
		}
	}
	assert.Equal(t, out, p.TransformRules(table), "transform must be deterministic")
}

func containsLegacy(pattern string) bool {
	for _, marker := range []string{"page/?", "Page/?"} {
		for i := 0; i+len(marker) <= len(pattern); i++ {
			if pattern[i:i+len(marker)] == marker {
				return true
			}
		}
	}
	return false
}

func TestTransformRulesInactive(t *testing.T) {
	var p *pagination.Patterns
	table := wordpressRules()

	out := p.TransformRules(table)
	assert.Equal(t, table, out)

	out[0].Pattern = "changed"
	assert.NotEqual(t, "changed", table[0].Pattern, "passthrough must return a copy")

	assert.Nil(t, p.TransformRules(nil))
}

func TestRuleTableYAMLKeepsOrder(t *testing.T) {
	doc := []byte(`
"page/?([0-9]{1,})/?$": "index.php?&paged=$matches[1]"
"zeta/?$": "index.php?z=1"
"(.+?)/page/?([0-9]{1,})/?$": "index.php?pagename=$matches[1]&paged=$matches[2]"
"alpha/?$": "index.php?a=1"
`)

	table, err := pagination.ParseRuleTable(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"page/?([0-9]{1,})/?$",
		"zeta/?$",
		"(.+?)/page/?([0-9]{1,})/?$",
		"alpha/?$",
	}, table.Patterns())

	out, err := yaml.Marshal(compile(t, "/p%number%").TransformRules(table))
	require.NoError(t, err)

	decoded, err := pagination.ParseRuleTable(out)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"p([0-9]{1,})$",
		"zeta/?$",
		"(.+?)/p([0-9]{1,})$",
		"alpha/?$",
	}, decoded.Patterns())
}

func TestParseRuleTableInvalid(t *testing.T) {
	_, err := pagination.ParseRuleTable([]byte("- not\n- a mapping\n"))
	require.Error(t, err)

	var gerr *goerrors.Error
	require.True(t, goerrors.As(err, &gerr))
	assert.Equal(t, pagination.TextCodeInvalidRuleTable, gerr.TextCode)
}

func TestValidateRules(t *testing.T) {
	p := compile(t, "/%number%/")
	table := pagination.RuleTable{
		{Pattern: "([0-9]{1,})/?$", Target: "index.php?p=$matches[1]"},
		{Pattern: "page/?([0-9]{1,})/?$", Target: "index.php?&paged=$matches[1]"},
		{Pattern: "broken/(unclosed", Target: "index.php?x=1"},
	}

	errs := pagination.ValidateRules(p.TransformRules(table))
	require.Len(t, errs, 2)

	var dup *goerrors.Error
	require.True(t, goerrors.As(errs[0], &dup))
	assert.Equal(t, pagination.TextCodeDuplicateRule, dup.TextCode)
	assert.Equal(t, goerrors.CategoryConflict, dup.Category)
	assert.Equal(t, 0, dup.Metadata["first"])
	assert.Equal(t, 1, dup.Metadata["second"])

	var invalid *goerrors.Error
	require.True(t, goerrors.As(errs[1], &invalid))
	assert.Equal(t, pagination.TextCodeInvalidRule, invalid.TextCode)

	assert.Empty(t, pagination.ValidateRules(wordpressRules()))
}
