// Package observability builds the process logger.
//
// The server logs through a single *zap.Logger created here and passed down
// through constructors. JSON output is the default; console output is meant
// for local development.
package observability
