package pagination

import (
	"net/http"
	"strings"
)

// StatusRedirect is the status used for every pagination redirect.
const StatusRedirect = http.StatusMovedPermanently

// Request describes an inbound request as seen by the host.
type Request struct {
	// URI is the request path with an optional query string.
	URI string
	// Singular is set when the request resolved to a single content item.
	Singular bool
	// Multipage is set when that item is split into several pages.
	Multipage bool
	// Permalink is the canonical URL of the single content item.
	Permalink string
}

// Decision is the outcome of Resolve. The zero value means no redirect.
type Decision struct {
	Location string
	Status   int
}

// NoRedirect is the decision to serve the request as is.
var NoRedirect = Decision{}

// Redirect reports whether the host must redirect.
func (d Decision) Redirect() bool {
	return d.Location != "" && d.Status != 0
}

func redirectTo(location string) Decision {
	return Decision{Location: location, Status: StatusRedirect}
}

// Resolver decides canonical redirects for inbound requests.
type Resolver interface {
	Resolve(req Request) Decision
}

var _ Resolver = (*Patterns)(nil)

// Resolve decides whether req must be redirected to its canonical form:
//
//   - singular content carrying a custom fragment goes to its permalink,
//     unless the template is the bare number and the content is multi-page
//   - a custom fragment with a page below 2 is stripped
//   - a legacy fragment is migrated to the custom scheme
//
// The query string is always carried over. Stripped and permalink targets
// keep their trailing slash, legacy migrations follow PageLink.
func (p *Patterns) Resolve(req Request) Decision {
	if p == nil {
		return NoRedirect
	}

	path, query := splitQuery(req.URI)
	if path == "" {
		return NoRedirect
	}

	if req.Singular {
		if !p.custom.Match(path) {
			return NoRedirect
		}
		if req.Multipage && p.template.IsBareNumber() {
			return NoRedirect
		}
		if req.Permalink != "" {
			return redirectTo(withQuery(req.Permalink, query))
		}
		return redirectTo(withQuery(p.custom.Strip(path), query))
	}

	if page, ok := p.custom.Page(path); ok {
		if page < 2 {
			return redirectTo(withQuery(p.custom.Strip(path), query))
		}
		return NoRedirect
	}

	if p.legacy.Match(path) {
		if location := p.PageLink(req.URI); location != "" {
			return redirectTo(location)
		}
	}

	return NoRedirect
}

// withQuery appends query to a redirect target without touching the
// target path. A target that already has a query gets it after "&".
func withQuery(location, query string) string {
	if query == "" {
		return location
	}
	if strings.Contains(location, "?") {
		return location + "&" + query
	}
	return location + "?" + query
}

// FilterCanonicalRedirect post-processes a redirect the host is about to
// issue for requestedURL. When the request already uses the custom scheme
// the host target is converted too, and the redirect is dropped when it
// would land on the requested URL. It returns the location to use and
// whether to redirect at all.
func (p *Patterns) FilterCanonicalRedirect(redirectURL, requestedURL string) (string, bool) {
	if p == nil {
		return redirectURL, redirectURL != ""
	}

	path, _ := splitQuery(requestedURL)
	if !p.custom.Match(path) {
		return redirectURL, redirectURL != ""
	}

	location := p.PageLink(redirectURL)
	if location == strings.TrimSpace(requestedURL) {
		return "", false
	}
	return location, location != ""
}
