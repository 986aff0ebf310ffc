// Package snowflake generates Twitter Snowflake-style unique identifiers:
// integers packed from a timestamp, a caller-assigned worker ID, and a
// per-tick sequence counter. Independent workers mint IDs without central
// coordination while IDs stay coarsely time-ordered across workers and
// strictly increasing within a single worker.
//
// The default layout packs a 41-bit millisecond timestamp, 10 worker bits,
// and 12 sequence bits below the sign bit of an int64. Layout53 is a compact
// alternative whose IDs survive a round trip through float64, for consumers
// such as JSON number parsers. The split between worker and sequence bits is
// adjustable per generator.
//
// A Generator is a single-writer state machine and is not safe for concurrent
// use. Give each goroutine its own Generator with a distinct worker ID, or
// guard a shared one with a mutex. Uniqueness across processes is the
// caller's responsibility: two live generators must never share a worker ID.
package snowflake
