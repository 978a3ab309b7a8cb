package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/follow"
	"github.com/frqhero/Plume-Back/internal/pagination"
	"github.com/frqhero/Plume-Back/internal/post"
)

// GetFeed GET /api/feed
// Posts des auteurs suivis, du plus récent au plus ancien. Ne suivre
// personne donne un fil vide, pas une erreur.
func GetFeed(c *gin.Context) {
	userID := c.GetString("user_id")

	followeeIDs, err := follow.FolloweeIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des abonnements"})
		return
	}

	if len(followeeIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"posts": []post.Post{},
			"page": gin.H{
				"number":       1,
				"num_pages":    1,
				"has_next":     false,
				"has_previous": false,
			},
		})
		return
	}

	var total int64
	if err := database.DB.Model(&post.Post{}).Where("user_id IN ?", followeeIDs).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération du fil"})
		return
	}

	w := pagination.Slice(total, pagination.ParsePageNumber(c.Query("page")), pagination.DefaultPageSize)

	var posts []post.Post
	if err := database.DB.Preload("User").
		Where("user_id IN ?", followeeIDs).
		Order("created_at DESC").
		Offset(w.Offset).Limit(w.Limit).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération du fil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page": gin.H{
			"number":       w.Number,
			"num_pages":    w.NumPages,
			"has_next":     w.HasNext,
			"has_previous": w.HasPrevious,
		},
	})
}
