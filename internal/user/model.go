package user

import "time"

type User struct {
	ID           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Bio          string
	AvatarURL    string
	IsAdmin      bool
}
