// Package pkglog configures structured logging for the minting service and
// carries the correlation ID through request contexts.
//
// The snowflake library itself returns errors and never logs; everything in
// this package belongs to the HTTP serving layer.
package pkglog
