package pagination

import "strings"

// PageLink rewrites a link produced with the legacy scheme so it uses the
// custom scheme. The page number found in the legacy fragment is kept,
// a custom fragment is removed, and the query string is carried over.
//
//	p.PageLink("/blog/page/3/?ref=ads") // "/blog/page-3.html?ref=ads"
func (p *Patterns) PageLink(url string) string {
	if p == nil {
		return url
	}
	return p.rewrite(url, 0, true)
}

// PageURL returns url pointing at page under the custom scheme. Any
// existing pagination fragment is removed first. Pages below 2 get no
// fragment at all.
func (p *Patterns) PageURL(url string, page int) string {
	if p == nil {
		return url
	}
	return p.rewrite(url, page, false)
}

// CanonicalURL rewrites url only when the current page is past the first.
func (p *Patterns) CanonicalURL(url string, paged int) string {
	if paged > 1 {
		return p.PageLink(url)
	}
	return url
}

// StripPage removes any pagination fragment from url.
func (p *Patterns) StripPage(url string) string {
	return p.PageURL(url, 0)
}

func (p *Patterns) rewrite(url string, page int, keepLegacyPage bool) string {
	path, query := splitQuery(url)

	if n, ok := p.legacy.Page(path); ok {
		if keepLegacyPage {
			page = n
		}
		path = p.legacy.Strip(path)
	} else if p.custom.Match(path) {
		path = p.custom.Strip(path)
	}

	if page > 1 {
		path = strings.TrimRight(path, "/") + p.template.Render(page)
	}

	return joinQuery(path, query)
}

// splitQuery splits url at the first "?" and trims both halves.
func splitQuery(url string) (path, query string) {
	path, query, _ = strings.Cut(url, "?")
	return strings.TrimSpace(path), strings.TrimSpace(query)
}

// joinQuery appends a non-empty query. Query strings never follow a
// trailing slash, except for the root path.
func joinQuery(path, query string) string {
	if query == "" {
		return path
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		trimmed = "/"
	}
	return trimmed + "?" + query
}
