package router

import (
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"

	"github.com/frqhero/Plume-Back/internal/auth"
	"github.com/frqhero/Plume-Back/internal/feed"
	"github.com/frqhero/Plume-Back/internal/follow"
	"github.com/frqhero/Plume-Back/internal/group"
	"github.com/frqhero/Plume-Back/internal/middleware"
	"github.com/frqhero/Plume-Back/internal/post"
)

// IndexCacheTTL : fenêtre de staleness du listing global
const IndexCacheTTL = 20 * time.Second

func New(store persistence.CacheStore) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Lecture publique, identité optionnelle (drapeau is_following)
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/posts", cache.CachePage(store, IndexCacheTTL, post.GetAllPosts))
	public.GET("/posts/:id", post.GetPostByID)
	public.GET("/groups", group.ListGroups)
	public.GET("/groups/:slug/posts", post.GetGroupPosts)
	public.GET("/users/:username", post.GetProfile)
	public.GET("/users/:username/followers", follow.GetFollowers)
	public.GET("/users/:username/following", follow.GetFollowing)

	// Écriture, authentification obligatoire
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.POST("/posts", post.CreatePost)
	authed.PUT("/posts/:id", post.UpdatePost)
	authed.POST("/posts/:id/comments", post.AddComment)
	authed.GET("/feed", feed.GetFeed)
	authed.POST("/users/:username/follow", follow.FollowAuthor)
	authed.DELETE("/users/:username/follow", follow.UnfollowAuthor)

	// Gestion des groupes, admin uniquement
	admin := authed.Group("")
	admin.Use(middleware.AdminOnlyMiddleware())
	admin.POST("/groups", group.CreateGroup)
	admin.DELETE("/groups/:slug", group.DeleteGroup)

	return r
}
