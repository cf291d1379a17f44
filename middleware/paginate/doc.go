// Package paginate provides go-router middleware that redirects legacy and
// non-canonical pagination URLs to the custom pagination scheme.
//
// The middleware only consumes a pagination.Resolver. How the suffix
// template is stored or how content is classified stays with the host,
// which plugs in through Config.Classify and Config.Permalink.
package paginate
