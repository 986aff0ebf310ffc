// Package idgen is the identifier-minting module: it owns the process'
// single snowflake Generator and exposes it over HTTP and websocket.
package idgen

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"

	"github.com/alasdairpan/snowflake"
	"github.com/alasdairpan/snowflake/internal/idgen/event"
	"github.com/alasdairpan/snowflake/internal/idgen/inbound"
	"github.com/alasdairpan/snowflake/internal/idgen/usecase"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgconfig"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgrouter"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgroutine"
	"github.com/alasdairpan/snowflake/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	gen, err := buildGenerator(dep.Config)
	if err != nil {
		return nil, err
	}
	slog.Info("idgen generator ready",
		"worker_id", gen.WorkerID(),
		"max_worker_id", gen.MaxWorkerID(),
		"max_sequence", gen.MaxSequence(),
	)

	buffer := int(dep.Config.GetInt("idgen.event_buffer"))
	if buffer < 1 {
		buffer = 512
	}
	bus := event.NewBus(buffer)
	consumer := event.NewStatsConsumer(bus, event.ConsumerConfig{
		Workers: int(dep.Config.GetInt("idgen.consumer_workers")),
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Generator: gen,
		Events:    bus,
		Stats:     consumer,
		Runner:    dep.Goroutine,
		UID:       dep.ID,
		RootCtx:   dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}

// buildGenerator resolves the generator configuration. Every key is
// optional except that a worker id below zero asks for a random one, for
// single-instance deployments that do not manage worker identities.
func buildGenerator(cfg pkgconfig.Config) (*snowflake.Generator, error) {
	layout := snowflake.Layout64
	if cfg.GetString("idgen.layout") == "53" {
		layout = snowflake.Layout53
	}

	workerBits := uint8(cfg.GetInt("idgen.worker_bits"))
	if workerBits == 0 {
		workerBits = layout.DefaultWorkerBits
	}

	workerID := cfg.GetInt("idgen.worker_id")
	if workerID < 0 {
		id, err := randomWorkerID(workerBits)
		if err != nil {
			return nil, err
		}
		workerID = id
	}

	b := snowflake.NewBuilder().
		WorkerID(workerID).
		WorkerBits(workerBits).
		Layout(layout)

	if epoch := cfg.GetTime("idgen.epoch"); !epoch.IsZero() {
		b.Epoch(epoch)
	}
	if timeout := cfg.GetDuration("idgen.timeout"); timeout < 0 {
		b.Timeout(snowflake.NoTimeout)
	} else if timeout > 0 {
		b.Timeout(timeout)
	}

	return b.Build()
}

func randomWorkerID(bits uint8) (int64, error) {
	var id int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &id); err != nil {
		return 0, err
	}

	return id & (1<<bits - 1), nil
}
