package middleware

import (
	"github.com/gin-gonic/gin"

	"zenith-planner/internal/auth"
	"zenith-planner/internal/model"
	"zenith-planner/pkg/response"
)

const scopeKey = "scope"

// ScopeFromContext returns the Scope set by the Scope middleware.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// Scope authenticates the request and attaches the caller's identity.
// It accepts the signed session cookie, or the X-User-Email header for
// clients running without Google login configured.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := ""
		if token, err := c.Cookie(auth.SessionCookie); err == nil && token != "" {
			if parsed, ok := auth.ParseSession(m.secret, token); ok {
				email = parsed
			}
		}
		if email == "" {
			email = c.GetHeader("X-User-Email")
		}
		if email == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, ok := m.userCache.Get(email)
		if !ok {
			var err error
			user, err = m.users.GetOrCreateUser(c.Request.Context(), email, "")
			if err != nil {
				m.l.Errorf(c.Request.Context(), "middleware.Scope: provisioning %q: %v", email, err)
				response.InternalError(c)
				c.Abort()
				return
			}
			m.userCache.Add(email, user)
		}

		c.Set(scopeKey, model.Scope{UserID: user.ID, Email: user.Email})
		c.Next()
	}
}
