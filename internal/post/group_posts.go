package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/group"
	"github.com/frqhero/Plume-Back/internal/pagination"
)

// GetGroupPosts GET /api/groups/:slug/posts
func GetGroupPosts(c *gin.Context) {
	g, err := group.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Groupe non trouvé"})
		return
	}

	var total int64
	if err := database.DB.Model(&Post{}).Where("group_id = ?", g.ID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		return
	}

	w := pagination.Slice(total, pagination.ParsePageNumber(c.Query("page")), pagination.DefaultPageSize)

	var posts []Post
	if err := database.DB.Preload("User").
		Where("group_id = ?", g.ID).
		Order("created_at DESC").
		Offset(w.Offset).Limit(w.Limit).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": g,
		"posts": posts,
		"page": gin.H{
			"number":       w.Number,
			"num_pages":    w.NumPages,
			"has_next":     w.HasNext,
			"has_previous": w.HasPrevious,
		},
	})
}
