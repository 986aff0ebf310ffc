// Package pkgroutine runs background work in goroutines with a bounded
// concurrency limit, panic recovery, and error collection.
package pkgroutine
