package inbound

import (
	"context"
	"net/http"

	"github.com/alasdairpan/snowflake/internal/idgen/usecase"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgrouter"
)

type uc interface {
	Mint(ctx context.Context) (usecase.MintResult, error)
	MintBatch(ctx context.Context, count int) (usecase.BatchResult, error)
	Inspect(ctx context.Context, raw string) (usecase.InspectResult, error)
	Stats(ctx context.Context) (usecase.StatsResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/ids", end.Mint)
	r.POST("/ids/batch", end.MintBatch)
	r.GET("/ids/:id", end.Inspect) // stats and stream live at the top level; httprouter rejects a wildcard sibling
	r.GET("/stats", end.Stats)

	r.Handle(http.MethodGet, "/stream", http.HandlerFunc(end.Stream))
}
