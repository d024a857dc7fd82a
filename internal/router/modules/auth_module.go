package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-jobboard/internal/interface/http"
	"github.com/oksasatya/go-jobboard/internal/interface/middleware"
)

// AuthModule wires the public credential endpoints:
// POST /auth/login, POST /auth/register
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)    // 10 req/min per IP
	registerLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil) // 5 req/min per IP

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
}
