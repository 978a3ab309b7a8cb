package main

import (
	"log"

	"github.com/gin-contrib/cache/persistence"
	"github.com/joho/godotenv"

	"github.com/frqhero/Plume-Back/internal/config"
	"github.com/frqhero/Plume-Back/internal/database"
	"github.com/frqhero/Plume-Back/internal/follow"
	"github.com/frqhero/Plume-Back/internal/group"
	"github.com/frqhero/Plume-Back/internal/post"
	"github.com/frqhero/Plume-Back/internal/router"
	"github.com/frqhero/Plume-Back/internal/storage"
	"github.com/frqhero/Plume-Back/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL manquant")
	}
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET manquant")
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&post.Comment{},
		&follow.Follow{},
	)

	if err := storage.InitS3(); err != nil {
		log.Fatalf("Erreur initialisation S3: %v", err)
	}

	store := persistence.NewInMemoryStore(router.IndexCacheTTL)

	r := router.New(store)
	if err := r.Run(":" + cfg.Port); err != nil {
		return
	}
}
