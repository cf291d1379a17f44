package paginate

import (
	"net/http"

	"github.com/goliatone/go-pagination"
)

// HTTPConfig configures the net/http flavour of the middleware, for hosts
// such as httprouter that work with plain handlers.
type HTTPConfig struct {
	SkipPaths []string
	Resolver  pagination.Resolver
	Classify  func(r *http.Request) (singular, multipage bool)
	Permalink func(r *http.Request) string
	Logger    pagination.Logger
}

// NewHTTP returns a standard net/http middleware with the same redirect
// rules as New.
func NewHTTP(cfg HTTPConfig) func(next http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = ConfigDefault.Logger
	}
	skip := compileSkipPaths(cfg.SkipPaths)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Resolver == nil || skip.match(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			req := pagination.Request{URI: r.URL.RequestURI()}
			if cfg.Classify != nil {
				req.Singular, req.Multipage = cfg.Classify(r)
			}
			if req.Singular && cfg.Permalink != nil {
				req.Permalink = cfg.Permalink(r)
			}

			decision := cfg.Resolver.Resolve(req)
			if !decision.Redirect() {
				next.ServeHTTP(w, r)
				return
			}

			cfg.Logger.Debug("pagination redirect",
				"from", req.URI,
				"location", decision.Location,
				"status", decision.Status,
			)
			recordRedirect(r.Context(), req.URI, decision)

			http.Redirect(w, r, decision.Location, decision.Status)
		})
	}
}
