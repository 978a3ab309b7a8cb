package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/group"
	"github.com/frqhero/Plume-Back/internal/logs"
	"github.com/frqhero/Plume-Back/internal/pagination"
	"github.com/frqhero/Plume-Back/internal/storage"
)

var validImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true, ".heic": true,
}

// GetAllPosts GET /api/posts
// Fil global paginé, du plus récent au plus ancien. La route est placée
// derrière le cache de réponse de 20 secondes dans cmd/server.
func GetAllPosts(c *gin.Context) {
	var total int64
	if err := database.DB.Model(&Post{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		return
	}

	w := pagination.Slice(total, pagination.ParsePageNumber(c.Query("page")), pagination.DefaultPageSize)

	var posts []Post
	if err := database.DB.Preload("User").
		Order("created_at DESC").
		Offset(w.Offset).Limit(w.Limit).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
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

// GetPostByID GET /api/posts/:id
// Renvoie le post, ses commentaires et le gabarit de formulaire vide.
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")

	var post Post
	if err := database.DB.Preload("User").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	var comments []Comment
	if err := database.DB.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// CreatePost POST /api/posts
// Crée un post avec image optionnelle puis redirige vers le profil de
// l'auteur, comme après soumission du formulaire.
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	input, fieldErrs, status := bindPostInput(c)
	if fieldErrs != nil {
		c.JSON(status, gin.H{"errors": fieldErrs})
		logs.Warn("Invalid post form", logs.Fields{
			"route":  route,
			"userID": userID,
		})
		return
	}

	postID := uuid.New().String()

	imageURL, errUpload := uploadImageIfAny(c)
	if errUpload != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUpload.Error()})
		return
	}

	newPost := Post{
		ID:        postID,
		CreatedAt: time.Now(),
		UserID:    userID,
		GroupID:   input.GroupID,
		Text:      input.Text,
		ImageURL:  imageURL,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// Si l'insertion échoue, on tente de supprimer le fichier déjà uploadé
		if key := storage.KeyFromURL(imageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.Error("Error creating post", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	var username string
	row := database.DB.Table("users").Select("username").Where("id = ?", userID).Row()
	if err := row.Scan(&username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération de l'utilisateur"})
		return
	}

	logs.Info("Post created", logs.Fields{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/users/%s", username))
}

// UpdatePost PUT /api/posts/:id
// Seul l'auteur édite. Un non-auteur est redirigé vers la vue détail sans
// erreur et le post reste intact. L'édition ne touche jamais user_id ni
// created_at.
func UpdatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var post Post
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	if post.UserID != userID {
		logs.Warn("Non-author edit attempt", logs.Fields{
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		c.Redirect(http.StatusFound, fmt.Sprintf("/api/posts/%s", postID))
		return
	}

	input, fieldErrs, status := bindPostInput(c)
	if fieldErrs != nil {
		c.JSON(status, gin.H{"errors": fieldErrs})
		return
	}

	imageURL, errUpload := uploadImageIfAny(c)
	if errUpload != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUpload.Error()})
		return
	}

	updates := map[string]interface{}{
		"text":     input.Text,
		"group_id": input.GroupID,
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}

	if err := database.DB.Model(&post).Select("text", "group_id", "image_url").Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour du post"})
		logs.Error("Error updating post", logs.Fields{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	// L'ancienne image est orpheline une fois la ligne mise à jour. La
	// clé fraîche par upload garantit qu'on ne supprime jamais l'objet
	// qui vient d'être envoyé.
	if imageURL != "" && post.ImageURL != "" {
		if key := storage.KeyFromURL(post.ImageURL); key != "" && key != storage.KeyFromURL(imageURL) {
			_ = storage.DeleteFromS3(key)
		}
	}

	logs.Info("Post updated", logs.Fields{
		"route":  route,
		"userID": userID,
		"postID": postID,
	})
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/posts/%s", postID))
}

// bindPostInput lit le formulaire multipart, vérifie le groupe s'il est
// fourni et applique la validation pure.
func bindPostInput(c *gin.Context) (PostInput, []FieldError, int) {
	input := PostInput{Text: c.PostForm("text")}

	if groupID := c.PostForm("group_id"); groupID != "" {
		var g group.Group
		if err := database.DB.First(&g, "id = ?", groupID).Error; err != nil {
			return input, []FieldError{{Field: "group_id", Message: "Groupe inconnu"}}, http.StatusBadRequest
		}
		input.GroupID = &g.ID
	}

	if errs := input.Validate(); errs != nil {
		return input, errs, http.StatusBadRequest
	}
	return input, nil, 0
}

// uploadImageIfAny uploade l'image jointe vers S3 si présente.
// Pas de fichier n'est pas une erreur, l'image est optionnelle.
func uploadImageIfAny(c *gin.Context) (string, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		return "", nil
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !validImageExtensions[ext] {
		return "", fmt.Errorf("extension de fichier invalide")
	}

	url, err := storage.UploadPostImage(file, ext, header.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("erreur lors de l'upload")
	}
	return url, nil
}
