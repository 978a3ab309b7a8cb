package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/follow"
	"github.com/frqhero/Plume-Back/internal/logs"
	"github.com/frqhero/Plume-Back/internal/pagination"
	"github.com/frqhero/Plume-Back/internal/user"
)

// GetProfile GET /api/users/:username
// Profil public : posts paginés de l'auteur et drapeau is_following du
// visiteur (faux en anonyme et pour son propre profil).
func GetProfile(c *gin.Context) {
	username := c.Param("username")
	currentUserID := c.GetString("user_id")

	u, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
		logs.Warn("User not found", logs.Fields{
			"route":    "/api/users/:username",
			"username": username,
			"userID":   currentUserID,
		})
		return
	}

	isFollowing := false
	if currentUserID != "" && currentUserID != u.ID {
		ok, err := follow.IsFollowing(currentUserID, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la vérification du suivi"})
			return
		}
		isFollowing = ok
	}

	var total int64
	if err := database.DB.Model(&Post{}).Where("user_id = ?", u.ID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		return
	}

	w := pagination.Slice(total, pagination.ParsePageNumber(c.Query("page")), pagination.DefaultPageSize)

	var posts []Post
	if err := database.DB.Where("user_id = ?", u.ID).
		Order("created_at DESC").
		Offset(w.Offset).Limit(w.Limit).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		return
	}

	var followersCount int64
	if err := database.DB.Model(&follow.Follow{}).Where("author_id = ?", u.ID).Count(&followersCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"bio":        u.Bio,
			"avatar_url": u.AvatarURL,
		},
		"stats": gin.H{
			"followers_count": followersCount,
			"posts_count":     total,
		},
		"is_following": isFollowing,
		"posts":        posts,
		"page": gin.H{
			"number":       w.Number,
			"num_pages":    w.NumPages,
			"has_next":     w.HasNext,
			"has_previous": w.HasPrevious,
		},
	})
}
