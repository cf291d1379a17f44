package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-pagination"
)

func TestAdjacent(t *testing.T) {
	p := compile(t, "/p%number%/")

	assert.Equal(t, pagination.Links{Next: "/shop/p2/"}, p.Adjacent("/shop/", 1, 5))
	assert.Equal(t, pagination.Links{Prev: "/shop/p2/", Next: "/shop/p4/"}, p.Adjacent("/shop/p3/", 3, 5))
	assert.Equal(t, pagination.Links{Prev: "/shop/p4?sort=asc"}, p.Adjacent("/shop/p5/?sort=asc", 5, 5))
	assert.True(t, p.Adjacent("/shop/", 1, 1).Empty())
	assert.True(t, p.Adjacent("/shop/", 0, 3).Empty())

	var inactive *pagination.Patterns
	assert.True(t, inactive.Adjacent("/shop/page/2/", 2, 3).Empty())
}

func TestRenderHeadLinks(t *testing.T) {
	html, err := pagination.RenderHeadLinks(pagination.Links{Next: "/shop/p2/?a=1&b=2"})
	require.NoError(t, err)
	assert.Equal(t, "<link rel=\"next\" href=\"/shop/p2/?a=1&amp;b=2\" />\n", html)

	html, err = pagination.RenderHeadLinks(pagination.Links{})
	require.NoError(t, err)
	assert.Empty(t, html)
}
