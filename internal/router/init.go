package router

import (
	"github.com/oksasatya/go-jobboard/internal/container"
	handlers "github.com/oksasatya/go-jobboard/internal/interface/http"
	"github.com/oksasatya/go-jobboard/internal/router/modules"
)

// InitModules builds the feature modules from the container singletons and adds
// them to the registry. Call once at startup, after the container is populated.
func InitModules(r *Registry) {
	store := container.GetStore()
	logger := container.GetLogger()
	rdb := container.GetRedis()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(store, logger), rdb))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(store, logger), store, rdb))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(store, logger), store, rdb))
	if cfg := container.GetConfig(); cfg == nil || cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(store, rdb))
	}
}
