package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frqhero/Plume-Back/internal/logs"
	"github.com/frqhero/Plume-Back/internal/user"
)

// AdminOnlyMiddleware protège la gestion des groupes, réservée aux admins
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		userID := c.GetString("user_id")

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
			logs.Warn("Non-authenticated user tried admin route", logs.Fields{
				"route": route,
			})
			return
		}

		isAdmin, err := user.IsAdmin(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification admin"})
			logs.Error("Erreur DB admin check", logs.Fields{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			logs.Warn("Non-admin user blocked from admin route", logs.Fields{
				"route":  route,
				"userID": userID,
			})
			return
		}

		c.Next()
	}
}
