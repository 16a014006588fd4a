// Package auth provides the identity primitives shared by the login flow
// and the request filter chain.
//
// This package implements:
//   - Principal: the authenticated user as seen by the rest of the system
//   - AuthenticatedContext: the per-request identity plus its granted authorities
//   - Role to authority mapping (ROLE_<ROLE>)
//
// Nothing here touches HTTP or storage; the middleware package attaches an
// AuthenticatedContext to the request context.
package auth
