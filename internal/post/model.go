package post

import (
	"time"

	"github.com/frqhero/Plume-Back/internal/user"
)

// Post : l'auteur et la date de création sont posés une fois pour toutes
// à la création, l'édition ne touche que text, group_id et image_url.
type Post struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    string    `gorm:"type:uuid"`
	User      user.User `gorm:"foreignKey:UserID"`
	GroupID   *string   `gorm:"type:uuid;index"`
	Text      string
	ImageURL  string
}
