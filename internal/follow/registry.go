package follow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/user"
)

// Add crée l'arête follower → author. S'abonner à soi-même ou se
// réabonner est un no-op, jamais une erreur et jamais une seconde ligne.
func Add(followerID, authorID string) error {
	if followerID == authorID {
		return nil
	}

	newFollow := Follow{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		FollowerID: followerID,
		AuthorID:   authorID,
	}

	if err := database.DB.Create(&newFollow).Error; err != nil {
		// L'index unique tranche les créations concurrentes : le doublon
		// perd la course et devient le no-op.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// Remove supprime l'arête. Absente, c'est gorm.ErrRecordNotFound : le
// delete est conditionné par la clause WHERE et vérifié via RowsAffected,
// donc un double unfollow concurrent donne un not-found déterministe.
func Remove(followerID, authorID string) error {
	res := database.DB.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsFollowing(followerID, authorID string) (bool, error) {
	var f Follow
	err := database.DB.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		First(&f).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// FolloweeIDs liste les auteurs suivis par followerID
func FolloweeIDs(followerID string) ([]string, error) {
	var ids []string
	err := database.DB.Model(&Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FollowersOf liste les abonnés d'un auteur, ordre stable par username
func FollowersOf(authorID string) ([]user.User, error) {
	var ids []string
	err := database.DB.Model(&Follow{}).
		Where("author_id = ?", authorID).
		Order("created_at ASC").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}

	followers := []user.User{}
	if len(ids) == 0 {
		return followers, nil
	}
	if err := database.DB.Where("id IN ?", ids).Order("username ASC").Find(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

// FolloweesOf liste les auteurs suivis, ordre stable par username
func FolloweesOf(followerID string) ([]user.User, error) {
	ids, err := FolloweeIDs(followerID)
	if err != nil {
		return nil, err
	}

	followees := []user.User{}
	if len(ids) == 0 {
		return followees, nil
	}
	if err := database.DB.Where("id IN ?", ids).Order("username ASC").Find(&followees).Error; err != nil {
		return nil, err
	}
	return followees, nil
}
