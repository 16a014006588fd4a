// Package policy decides which routes require an authenticated caller.
//
// An AccessPolicy is a static, ordered table of rules. Each rule pairs an
// HTTP method and a path pattern with a Requirement. The first matching rule
// wins and anything unmatched requires authentication.
//
// Patterns may be:
//   - exact paths ("/users")
//   - path.Match globs ("/products/*")
//   - subtree matches ("/auth/**" matches "/auth" and everything below it)
//
// Enforcement lives in the middleware package; this package only answers
// the question.
package policy
