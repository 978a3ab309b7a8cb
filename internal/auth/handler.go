package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/logs"
	"github.com/frqhero/Plume-Back/internal/user"
)

// Signup : Inscription
func Signup(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
		Bio      string `json:"bio"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if input.Email == "" || input.Password == "" || input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants"})
		return
	}

	// Vérification que email et username n'existent pas
	if user.ExistsByEmail(input.Email) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email déjà utilisé"})
		return
	}
	if user.ExistsByUsername(input.Username) {
		c.JSON(http.StatusConflict, gin.H{"error": "Nom d'utilisateur déjà utilisé"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hashage mot de passe"})
		return
	}

	newUser := user.User{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Bio:          input.Bio,
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		logs.Error("Error creating user", logs.Fields{
			"error":    err.Error(),
			"route":    "/api/signup",
			"username": input.Username,
		})
		return
	}

	token, err := issueToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Compte créé avec succès",
		"token":   token,
		"user": gin.H{
			"id":       newUser.ID,
			"username": newUser.Username,
		},
	})
	logs.Info("User signed up", logs.Fields{
		"route":    "/api/signup",
		"userID":   newUser.ID,
		"username": newUser.Username,
	})
}

// Login : Connexion
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	var u user.User
	if err := database.DB.Where("email = ?", input.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération utilisateur"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	token, err := issueToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       u.ID,
			"username": u.Username,
		},
	})
	logs.Info("User logged in", logs.Fields{
		"route":  "/api/login",
		"userID": u.ID,
	})
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
