package usecase

import "time"

// MintResult is one freshly minted identifier with its decomposed fields.
type MintResult struct {
	ID        int64
	Timestamp int64
	WorkerID  int64
	Sequence  int64
	Time      time.Time
}

// BatchResult is an ordered run of identifiers minted in one call.
type BatchResult struct {
	IDs      []int64
	WorkerID int64
}

// InspectResult is the decomposition of a caller-supplied identifier under
// this service's layout.
type InspectResult struct {
	ID        int64
	Timestamp int64
	WorkerID  int64
	Sequence  int64
	Time      time.Time
}

// StatsResult summarizes minting activity since the process started.
type StatsResult struct {
	WorkerID     int64
	Events       int64
	IDs          int64
	LastMintedAt time.Time
}
