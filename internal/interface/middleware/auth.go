package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-jobboard/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user id.
const CtxUserIDKey = "userID"

// Authorizer resolves an Authorization header value to a user id.
type Authorizer interface {
	Authorize(ctx context.Context, authorization string) (string, error)
}

// Auth validates the bearer token in the Authorization header and sets userID in
// the Gin context. Any failure is a 403, matching how access errors are reported elsewhere.
func Auth(a Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := a.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, http.StatusForbidden, err.Error(), nil)
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}
