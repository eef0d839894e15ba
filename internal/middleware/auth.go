package middleware

import (
	"net/http"
	"strings"

	"github.com/blues/pts/internal/auth"
	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

// Auth resolves the Bearer token to a user and stores it on the
// context. Requests without a valid token are rejected with 401.
func Auth(tokens *auth.TokenManager, users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			abortUnauthenticated(c)
			return
		}
		userID, err := tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		user, err := users.ByID(userID)
		if err != nil || user == nil || !user.IsActive {
			abortUnauthenticated(c)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	value, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "authentication required",
		"data":    nil,
	})
}
