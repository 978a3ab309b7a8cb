package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frqhero/Plume-Back/internal/database"
)

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func ExistsByUsername(username string) bool {
	var count int64
	database.DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// GetByUsername renvoie gorm.ErrRecordNotFound si l'utilisateur n'existe pas
func GetByUsername(username string) (*User, error) {
	var u User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// IsAdmin vérifie si un utilisateur est admin à partir de son ID
func IsAdmin(userID string) (bool, error) {
	var isAdmin bool
	if err := database.DB.Model(&User{}).Select("is_admin").Where("id = ?", userID).Scan(&isAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return isAdmin, nil
}
