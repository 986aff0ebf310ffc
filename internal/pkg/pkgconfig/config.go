package pkgconfig

import "time"

// Config reads typed values by dotted key, for example "idgen.worker_id".
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetDuration(key string) time.Duration
	GetTime(key string) time.Time
	Close() error
}
