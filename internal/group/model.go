package group

import (
	"time"
)

type Group struct {
	ID          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	Title       string
	Slug        string `gorm:"uniqueIndex"`
	Description string
}
