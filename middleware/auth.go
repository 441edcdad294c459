package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-backend/services"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// CurrentUserKey is where RequireAdmin stores the resolved user on the
// request context.
const CurrentUserKey = "currentUser"

// RequireAdmin gates a route group behind a valid, unexpired session. On
// failure the request is aborted with 401 and no body beyond the error tag.
func RequireAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user, err := auth.UserByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
