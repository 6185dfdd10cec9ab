package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/pkg/utils"
)

const actorKey = "actor"

func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		role := db_models.Role(claims.Role)
		if err != nil || !role.Valid() {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(actorKey, request_models.Actor{UserID: userID, Role: role})
		c.Next()
	}
}

// RequireRoles lets the request through only when the authenticated actor
// holds one of roles. It must run after JWTAuthMiddleware.
func RequireRoles(roles ...db_models.Role) gin.HandlerFunc {

	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !actor.HasRole(roles...) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

func ActorFromContext(c *gin.Context) (request_models.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return request_models.Actor{}, false
	}
	actor, ok := v.(request_models.Actor)
	return actor, ok
}
