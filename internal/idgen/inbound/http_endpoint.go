package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alasdairpan/snowflake/internal/pkg/pkgerror"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Mint(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Mint(ctx)
	if err != nil {
		return nil, err
	}

	return MintResponse{
		ID:        result.ID,
		IDString:  strconvID(result.ID),
		Timestamp: result.Timestamp,
		WorkerID:  result.WorkerID,
		Sequence:  result.Sequence,
		Time:      result.Time,
	}, nil
}

func (h *HTTPEndpoint) MintBatch(ctx context.Context, r *http.Request) (any, error) {
	var req BatchRequest
	if r.Body == nil {
		return nil, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidInput(errors.New("body must be a json object with a count field"))
	}

	result, err := h.uc.MintBatch(ctx, req.Count)
	if err != nil {
		return nil, err
	}

	return BatchResponse{
		IDs:      result.IDs,
		WorkerID: result.WorkerID,
		count:    len(result.IDs),
	}, nil
}

func (h *HTTPEndpoint) Inspect(ctx context.Context, _ *http.Request) (any, error) {
	raw := strings.TrimSpace(pkgrouter.GetParam(ctx, "id"))
	if raw == "" {
		return nil, pkgerror.NewInvalidInput(errors.New("id is required"))
	}

	result, err := h.uc.Inspect(ctx, raw)
	if err != nil {
		return nil, err
	}

	return InspectResponse{
		ID:        result.ID,
		IDString:  strconvID(result.ID),
		Timestamp: result.Timestamp,
		WorkerID:  result.WorkerID,
		Sequence:  result.Sequence,
		Time:      result.Time,
	}, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return StatsResponse{
		WorkerID:     result.WorkerID,
		Events:       result.Events,
		IDs:          result.IDs,
		LastMintedAt: result.LastMintedAt,
	}, nil
}
