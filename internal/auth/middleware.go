package auth

import (
	"errors"
	"net/http"

	"todo-service/internal/logging"
	"todo-service/internal/service"

	"github.com/gin-gonic/gin"
)

const contextKeyUsername = "username"

// UsernameFromContext returns the identity bound by RequireUser. "" if not set.
func UsernameFromContext(c *gin.Context) string {
	return c.GetString(contextKeyUsername)
}

// RequireUser returns a middleware that resolves the username header to a
// registered user and binds it to the request. If missing or unknown, responds with 400.
func RequireUser(users Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Resolve(c.Request.Context(), credential(c))
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredential) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ""})
				return
			}
			logging.FromContext(c).WithError(err).Error("resolve user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(contextKeyUsername, u.Username)
		c.Next()
	}
}
