package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OptionalAuthMiddleware pose user_id dans le contexte si un token valide
// est présent, sinon laisse passer en anonyme.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		jwtSecret := []byte(os.Getenv("JWT_SECRET"))

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode signature invalide")
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		if userID, ok := claims["sub"].(string); ok {
			c.Set("user_id", userID)
		}

		c.Next()
	}
}
