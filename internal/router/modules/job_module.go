package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-jobboard/internal/interface/http"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
)

// JobModule wires the job post endpoints, all behind bearer auth:
// GET /job/feed, POST|PUT|DELETE /job, POST /job/comment, PUT /job/like
type JobModule struct {
	Handler *handlers.JobHandler
	Auth    middleware.Authorizer
	Redis   *redis.Client
}

func NewJobModule(h *handlers.JobHandler, auth middleware.Authorizer, rdb *redis.Client) *JobModule {
	return &JobModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/job")
	auth.Use(
		middleware.Auth(m.Auth),
		middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/feed", m.Handler.Feed)
		auth.POST("", m.Handler.Create)
		auth.PUT("", m.Handler.Update)
		auth.DELETE("", m.Handler.Delete)
		auth.POST("/comment", m.Handler.Comment)
		auth.PUT("/like", m.Handler.Like)
	}
}
