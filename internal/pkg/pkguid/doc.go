// Package pkguid provides string identifier generation for plumbing concerns
// such as correlation IDs and audit event IDs.
//
// Numeric ID minting — the product of this repository — lives in the root
// snowflake package; this package only covers the string IDs the serving
// layer needs for itself.
package pkguid
