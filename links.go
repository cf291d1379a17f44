package pagination

import (
	"github.com/flosch/pongo2/v6"
)

// Links are the neighbour pages of a paginated listing. Empty fields mean
// there is no such page.
type Links struct {
	Prev string
	Next string
}

// Empty reports whether neither neighbour exists.
func (l Links) Empty() bool {
	return l.Prev == "" && l.Next == ""
}

// Adjacent returns the previous and next page URLs for url, which is the
// URL of page current. last is the number of pages, a next link is only
// produced while current < last.
func (p *Patterns) Adjacent(url string, current, last int) Links {
	if p == nil || current < 1 {
		return Links{}
	}

	var links Links
	if current > 1 {
		links.Prev = p.PageURL(url, current-1)
	}
	if current < last {
		links.Next = p.PageURL(url, current+1)
	}
	return links
}

// Own set, host view engines mutate pongo2.DefaultSet options.
var headLinksSet = pongo2.NewSet("pagination", pongo2.DefaultLoader)

var headLinksTemplate = pongo2.Must(headLinksSet.FromString(
	`{% if prev %}<link rel="prev" href="{{ prev }}" />
{% endif %}{% if next %}<link rel="next" href="{{ next }}" />
{% endif %}`))

// RenderHeadLinks renders rel prev/next link tags for a document head.
// Values are HTML escaped.
func RenderHeadLinks(links Links) (string, error) {
	if links.Empty() {
		return "", nil
	}
	return headLinksTemplate.Execute(pongo2.Context{
		"prev": links.Prev,
		"next": links.Next,
	})
}
