// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nikhilpktcr/dietPlanner/utils"
)

// AuthMiddleware parses the bearer token and stores userID, email and role
// on the context. Tokens are self-contained; no DB lookup happens here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.SendError(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			utils.SendError(c, http.StatusInternalServerError, "server misconfigured: JWT_SECRET not set")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			utils.SendError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.SendError(c, http.StatusUnauthorized, "invalid claims")
			c.Abort()
			return
		}

		id, ok := claims["userId"].(float64) // numbers decode as float64
		if !ok || id <= 0 {
			utils.SendError(c, http.StatusUnauthorized, "userId claim missing")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		c.Set("userID", uint(id))
		c.Set("role", role)
		c.Set("email", email)

		c.Next()
	}
}

// Authorize gates a route by role. Run it after AuthMiddleware.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		utils.SendError(c, http.StatusForbidden, "forbidden")
		c.Abort()
	}
}
