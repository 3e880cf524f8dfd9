package auth

import (
	"context"

	dom "todo-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// HeaderUsername carries the caller's identity. It is a plain username, not a token.
const HeaderUsername = "username"

// Resolver maps a username credential to a registered user.
type Resolver interface {
	Resolve(ctx context.Context, username string) (dom.User, error)
}

func credential(c *gin.Context) string {
	return c.GetHeader(HeaderUsername)
}
