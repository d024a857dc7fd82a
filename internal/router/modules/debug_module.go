package modules

import (
	"expvar"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-jobboard/internal/application"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
)

var (
	publishOnce sync.Once
	statsSource atomic.Pointer[application.Store]
)

type DebugModule struct {
	Store *application.Store
	Redis *redis.Client
}

func NewDebugModule(store *application.Store, rdb *redis.Client) *DebugModule {
	return &DebugModule{Store: store, Redis: rdb}
}

// Register exposes expvar at /debug/vars with a "store" entry holding user and post counts.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	statsSource.Store(m.Store)
	publishOnce.Do(func() {
		expvar.Publish("store", expvar.Func(func() any {
			if s := statsSource.Load(); s != nil {
				return s.Stats()
			}
			return nil
		}))
	})
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
