package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-jobboard/internal/interface/http"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
)

// UserModule wires profile and watch endpoints, all behind bearer auth:
// GET|PUT /user, PUT /user/watch, GET /user/search
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    middleware.Authorizer
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, auth middleware.Authorizer, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/user")
	auth.Use(
		middleware.Auth(m.Auth),
		middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("", m.Handler.GetUser)
		auth.PUT("", m.Handler.UpdateProfile)
		auth.PUT("/watch", m.Handler.Watch)
		auth.GET("/search", middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByUserID(), nil), m.Handler.Search)
	}
}
