package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/alasdairpan/snowflake/internal/idgen"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.idgen.enabled") {
		closer, err := idgen.New(idgen.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module idgen", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Idgen"] = closer
		}
	}
}
