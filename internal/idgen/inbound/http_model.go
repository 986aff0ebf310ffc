package inbound

import (
	"net/http"
	"strconv"
	"time"
)

// strconvID renders an identifier as a decimal string. Responses carry both
// forms because 63-bit values overflow the float64 numbers JavaScript JSON
// parsers produce.
func strconvID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type MintResponse struct {
	ID        int64     `json:"id"`
	IDString  string    `json:"id_str"`
	Timestamp int64     `json:"timestamp"`
	WorkerID  int64     `json:"worker_id"`
	Sequence  int64     `json:"sequence"`
	Time      time.Time `json:"time"`
}

func (MintResponse) StatusCode() int {
	return http.StatusCreated
}

func (MintResponse) Message() string {
	return "id minted"
}

type BatchRequest struct {
	Count int `json:"count"`
}

type BatchResponse struct {
	IDs      []int64 `json:"ids"`
	WorkerID int64   `json:"worker_id"`
	count    int
}

func (BatchResponse) StatusCode() int {
	return http.StatusCreated
}

func (BatchResponse) Message() string {
	return "ids minted"
}

func (r BatchResponse) Meta() map[string]any {
	return map[string]any{
		"count": r.count,
	}
}

type InspectResponse struct {
	ID        int64     `json:"id"`
	IDString  string    `json:"id_str"`
	Timestamp int64     `json:"timestamp"`
	WorkerID  int64     `json:"worker_id"`
	Sequence  int64     `json:"sequence"`
	Time      time.Time `json:"time"`
}

type StatsResponse struct {
	WorkerID     int64     `json:"worker_id"`
	Events       int64     `json:"events"`
	IDs          int64     `json:"ids"`
	LastMintedAt time.Time `json:"last_minted_at"`
}
