package post

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/logs"
)

// AddComment POST /api/posts/:id/comments
// Un texte vide est refusé avec une erreur de champ : on ne crée jamais
// de commentaire vide et on ne jette pas la tentative en silence.
func AddComment(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	input := CommentInput{Text: c.PostForm("text")}
	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		logs.Warn("Invalid comment form", logs.Fields{
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	comment := Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		UserID:    userID,
		Text:      input.Text,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
		logs.Error("Error creating comment", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	logs.Info("Comment added", logs.Fields{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/posts/%s", postID))
}
