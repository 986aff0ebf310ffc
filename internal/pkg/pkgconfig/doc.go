// Package pkgconfig provides a small abstraction for reading configuration
// values.
//
// The service expects config values to come from a concrete implementation
// (for example Viper). Wiring code should depend on the Config interface so
// it stays easy to test and does not care where values come from (file, env,
// etc).
package pkgconfig
