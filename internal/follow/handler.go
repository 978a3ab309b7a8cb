package follow

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/frqhero/Plume-Back/internal/logs"
	"github.com/frqhero/Plume-Back/internal/user"
)

// FollowAuthor POST /api/users/:username/follow
// Redirige vers le profil que l'arête ait été créée ou non.
func FollowAuthor(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		logs.Warn("Follow target not found", logs.Fields{
			"route":    route,
			"userID":   followerID,
			"username": username,
		})
		return
	}

	if err := Add(followerID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout du follow"})
		logs.Error("Error adding follow", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("authorID : %s", author.ID),
		})
		return
	}

	logs.Info("Followed author", logs.Fields{
		"route":    route,
		"userID":   followerID,
		"username": username,
	})
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/users/%s", username))
}

// UnfollowAuthor DELETE /api/users/:username/follow
// Se désabonner sans arête existante est un 404, pas un no-op.
func UnfollowAuthor(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	if err := Remove(followerID, author.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Abonnement non trouvé"})
			logs.Warn("Unfollow without existing edge", logs.Fields{
				"route":    route,
				"userID":   followerID,
				"username": username,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur unfollow"})
		logs.Error("Error unfollow", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("authorID : %s", author.ID),
		})
		return
	}

	logs.Info("Unfollowed author", logs.Fields{
		"route":    route,
		"userID":   followerID,
		"username": username,
	})
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/users/%s", username))
}

// GetFollowers GET /api/users/:username/followers
func GetFollowers(c *gin.Context) {
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	followers, err := FollowersOf(author.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

// GetFollowing GET /api/users/:username/following
func GetFollowing(c *gin.Context) {
	username := c.Param("username")

	u, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		return
	}

	followees, err := FolloweesOf(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des abonnements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": followees})
}
