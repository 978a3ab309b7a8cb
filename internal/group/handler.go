package group

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/logs"
)

// GetBySlug renvoie gorm.ErrRecordNotFound si le slug est inconnu
func GetBySlug(s string) (*Group, error) {
	var g Group
	if err := database.DB.Where("slug = ?", s).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGroups GET /api/groups
// Sert aussi le formulaire de création/édition de post côté client.
func ListGroups(c *gin.Context) {
	var groups []Group
	if err := database.DB.Order("title ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des groupes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup POST /api/groups (admin)
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newGroup := Group{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Title:       input.Title,
		Slug:        slug.Make(input.Title),
		Description: input.Description,
	}

	if err := database.DB.Create(&newGroup).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un groupe avec ce titre existe déjà"})
		logs.Warn("Group slug collision", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   newGroup.Slug,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Groupe créé avec succès",
		"group":   newGroup,
	})
	logs.Info("Group created", logs.Fields{
		"route":  route,
		"userID": userID,
		"slug":   newGroup.Slug,
	})
}

// DeleteGroup DELETE /api/groups/:slug (admin)
// Les posts du groupe survivent : leur référence passe à NULL avant la
// suppression, jamais de référence pendante.
func DeleteGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	g, err := GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Groupe non trouvé"})
		return
	}

	if err := database.DB.Table("posts").Where("group_id = ?", g.ID).Update("group_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur détachement des posts"})
		logs.Error("Error detaching posts from group", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   g.Slug,
		})
		return
	}

	if err := database.DB.Delete(g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression du groupe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Groupe supprimé avec succès"})
	logs.Info("Group deleted", logs.Fields{
		"route":  route,
		"userID": userID,
		"slug":   g.Slug,
	})
}
