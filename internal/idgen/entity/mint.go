package entity

import "time"

// MintEvent is the audit record published after identifiers are minted.
type MintEvent struct {
	EventID  string
	WorkerID int64
	Count    int
	At       time.Time
}
