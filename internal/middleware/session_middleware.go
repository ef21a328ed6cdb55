package middleware

import (
	autherrors "go-roster/internal/auth/errors"
	"go-roster/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionGate is the local view of the auth service the middleware needs.
type SessionGate interface {
	CurrentUserID() (string, bool)
}

// RequireSession rejects requests while no session marker is present and
// otherwise exposes the session user id as "user_id".
func RequireSession(gate SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := gate.CurrentUserID()
		if !ok {
			errObj := autherrors.ErrUnauthenticated
			response.Abort(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
