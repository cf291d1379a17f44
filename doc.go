// Package pagination rewrites pagination fragments in URLs and route rule
// tables, moving a site from the legacy "/page/N/" scheme to a custom scheme
// defined by a suffix template such as "/page-%number%.html".
//
// The package exposes three pure operations on compiled Patterns:
//
//	p := pagination.Compile(pagination.MustParseSuffix("/page-%number%.html"), "page")
//	p.PageLink("/blog/page/3/")                    // "/blog/page-3.html"
//	p.TransformRules(table)                        // rewritten rule table
//	p.Resolve(pagination.Request{URI: "/blog/page/2/"}) // 301 to "/blog/page-2.html"
//
// A nil *Patterns is the inactive configuration, every operation on it is a
// passthrough. Manager keeps the current configuration for hosts that
// reload it at runtime.
package pagination
