package follow

import (
	"time"
)

// Follow est l'arête abonné → auteur. L'index unique composé porte
// l'invariant d'unicité au niveau du store : deux requêtes concurrentes
// ne peuvent pas créer l'arête deux fois.
type Follow struct {
	ID         string `gorm:"primaryKey"`
	CreatedAt  time.Time
	FollowerID string `gorm:"type:uuid;uniqueIndex:idx_follower_author"`
	AuthorID   string `gorm:"type:uuid;uniqueIndex:idx_follower_author"`
}
