package inbound

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alasdairpan/snowflake/internal/pkg/pkgerror"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced at the HTTP server wrapper.
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamRequest is one client message on the /stream socket: a request for
// the next count identifiers.
type StreamRequest struct {
	Count int `json:"count"`
}

type StreamResponse struct {
	IDs      []int64 `json:"ids"`
	WorkerID int64   `json:"worker_id"`
}

type streamError struct {
	Error string `json:"error"`
}

// Stream upgrades the connection and serves mint requests until the client
// disconnects. Each request message yields exactly one response message, so
// the client controls the pace.
func (h *HTTPEndpoint) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to upgrade stream connection", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx := r.Context()
	for {
		var req StreamRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.WarnContext(ctx, "stream closed unexpectedly", "error", err)
			}
			return
		}

		count := req.Count
		if count < 1 {
			count = 1
		}

		result, err := h.uc.MintBatch(ctx, count)
		if err != nil {
			if werr := conn.WriteJSON(streamError{Error: streamErrorMessage(err)}); werr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(StreamResponse{IDs: result.IDs, WorkerID: result.WorkerID}); err != nil {
			return
		}
	}
}

func streamErrorMessage(err error) string {
	var serr *pkgerror.Error
	if errors.As(err, &serr) {
		return serr.Msg()
	}
	return "internal server error"
}
