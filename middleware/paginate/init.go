package paginate

import (
	"context"

	"github.com/gobwas/glob"
	"github.com/goliatone/go-router"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-pagination"
)

// EventRedirect is the span event recorded for every redirect.
const EventRedirect = "pagination.redirect"

type Config struct {
	Skip func(c router.Context) bool
	// SkipPaths are glob patterns, "/" separated, e.g. "/admin/**".
	SkipPaths []string
	Resolver  pagination.Resolver
	// Classify reports whether the request resolved to a single content
	// item and whether that item spans several pages.
	Classify func(c router.Context) (singular, multipage bool)
	// Permalink returns the canonical URL of a single content item.
	Permalink func(c router.Context) string
	Logger    pagination.Logger
}

var ConfigDefault = Config{
	Skip:      nil,
	SkipPaths: nil,
	Resolver:  nil,
	Classify:  nil,
	Permalink: nil,
	Logger:    pagination.DefaultLogger(),
}

// New returns the redirect middleware. It panics if a skip path is not a
// valid glob.
func New(config ...Config) router.MiddlewareFunc {
	cfg := configDefault(config...)
	skip := compileSkipPaths(cfg.SkipPaths)

	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if cfg.Resolver == nil {
				return ctx.Next()
			}

			if cfg.Skip != nil && cfg.Skip(ctx) {
				return ctx.Next()
			}

			if skip.match(ctx.Path()) {
				return ctx.Next()
			}

			req := pagination.Request{URI: ctx.OriginalURL()}
			if cfg.Classify != nil {
				req.Singular, req.Multipage = cfg.Classify(ctx)
			}
			if req.Singular && cfg.Permalink != nil {
				req.Permalink = cfg.Permalink(ctx)
			}

			decision := cfg.Resolver.Resolve(req)
			if !decision.Redirect() {
				return ctx.Next()
			}

			cfg.Logger.Debug("pagination redirect",
				"from", req.URI,
				"location", decision.Location,
				"status", decision.Status,
			)
			recordRedirect(ctx.Context(), req.URI, decision)

			return ctx.Redirect(decision.Location, decision.Status)
		}
	}
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.Logger == nil {
		cfg.Logger = ConfigDefault.Logger
	}

	return cfg
}

type skipMatcher []glob.Glob

func compileSkipPaths(patterns []string) skipMatcher {
	out := make(skipMatcher, 0, len(patterns))
	for _, pattern := range patterns {
		out = append(out, glob.MustCompile(pattern, '/'))
	}
	return out
}

func (s skipMatcher) match(path string) bool {
	for _, g := range s {
		if g.Match(path) {
			return true
		}
	}
	return false
}

func recordRedirect(ctx context.Context, from string, decision pagination.Decision) {
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(EventRedirect, trace.WithAttributes(
		attribute.String("pagination.from", from),
		attribute.String("pagination.location", decision.Location),
		attribute.Int("pagination.status", decision.Status),
	))
}
