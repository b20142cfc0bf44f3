package middleware

import (
	"daily_challenge_backend/internal/model"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// SessionMiddleware resolves the persisted current-user record. There is no
// token layer: the stored session is the single source of identity, and an
// absent session means the client belongs on the login page.
func SessionMiddleware(sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Current(c.Request.Context())
		if err != nil {
			util.LogInternalError(c, err)
			c.Abort()
			return
		}
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RoleMiddleware gates admin-only routes; non-admins get the access-denied
// response the navigation layer renders as its own page.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}

func GetUserFromContext(c *gin.Context) *model.User {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
