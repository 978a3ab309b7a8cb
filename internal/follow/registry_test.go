package follow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/user"
)

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		TranslateError: true,
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&user.User{}, &Follow{}))

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })
}

func createTestUser(t *testing.T, username string) *user.User {
	u := user.User{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Username:  username,
		Email:     username + "@example.com",
	}
	assert.NoError(t, database.DB.Create(&u).Error)
	return &u
}

func countEdges(t *testing.T) int64 {
	var count int64
	assert.NoError(t, database.DB.Model(&Follow{}).Count(&count).Error)
	return count
}

func TestAddIsIdempotent(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	b := createTestUser(t, "boris")

	assert.NoError(t, Add(a.ID, b.ID))
	assert.NoError(t, Add(a.ID, b.ID))

	assert.Equal(t, int64(1), countEdges(t))

	ok, err := IsFollowing(a.ID, b.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAddSelfIsNoop(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")

	assert.NoError(t, Add(a.ID, a.ID))

	assert.Equal(t, int64(0), countEdges(t))

	ok, err := IsFollowing(a.ID, a.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveWithoutEdge(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	b := createTestUser(t, "boris")

	err := Remove(a.ID, b.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Equal(t, int64(0), countEdges(t))
}

func TestRemoveExistingEdge(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	b := createTestUser(t, "boris")

	assert.NoError(t, Add(a.ID, b.ID))
	assert.NoError(t, Remove(a.ID, b.ID))

	assert.Equal(t, int64(0), countEdges(t))

	ok, err := IsFollowing(a.ID, b.ID)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Le second unfollow voit l'arête déjà partie
	err = Remove(a.ID, b.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFollowersAndFollowees(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "alice")
	b := createTestUser(t, "boris")
	c := createTestUser(t, "clara")

	assert.NoError(t, Add(a.ID, c.ID))
	assert.NoError(t, Add(b.ID, c.ID))
	assert.NoError(t, Add(a.ID, b.ID))

	followers, err := FollowersOf(c.ID)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)
	assert.Equal(t, "alice", followers[0].Username)
	assert.Equal(t, "boris", followers[1].Username)

	followees, err := FolloweesOf(a.ID)
	assert.NoError(t, err)
	assert.Len(t, followees, 2)
	assert.Equal(t, "boris", followees[0].Username)
	assert.Equal(t, "clara", followees[1].Username)

	ids, err := FolloweeIDs(a.ID)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{b.ID, c.ID}, ids)
}
