package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Brideshead/api-final-yatube/internal/admin"
	"github.com/Brideshead/api-final-yatube/internal/auth"
	"github.com/Brideshead/api-final-yatube/internal/config"
	"github.com/Brideshead/api-final-yatube/internal/database"
	"github.com/Brideshead/api-final-yatube/internal/follow"
	"github.com/Brideshead/api-final-yatube/internal/group"
	"github.com/Brideshead/api-final-yatube/internal/logs"
	"github.com/Brideshead/api-final-yatube/internal/middleware"
	"github.com/Brideshead/api-final-yatube/internal/post"
	"github.com/Brideshead/api-final-yatube/internal/storage"
	"github.com/Brideshead/api-final-yatube/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL manquant")
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&post.Comment{},
		&follow.Follow{},
	)

	if cfg.AWSBucket != "" {
		if err := storage.InitS3(); err != nil {
			logs.LogJSON("WARN", "S3 indisponible, uploads d'images désactivés", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Lecture ouverte aux anonymes, user_id posé si token valide
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/groups", group.GetAllGroups)
		public.GET("/groups/:id", group.GetGroupByID)

		public.GET("/posts", post.GetAllPosts)
		public.GET("/posts/:id", post.GetPostByID)
		public.GET("/posts/:id/comments", post.GetCommentsByPostID)
		public.GET("/posts/:id/comments/:comment_id", post.GetCommentByID)

		public.GET("/users/:username", user.GetUserByUsername)
	}

	// Écritures : authentification obligatoire
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", user.GetMe)
		authed.DELETE("/me", user.DeleteMe)

		authed.POST("/posts", post.CreatePost)
		authed.PUT("/posts/:id", post.UpdatePost)
		authed.PATCH("/posts/:id", post.UpdatePost)
		authed.DELETE("/posts/:id", post.DeletePost)

		authed.POST("/posts/:id/comments", post.CreateComment)
		authed.PUT("/posts/:id/comments/:comment_id", post.UpdateComment)
		authed.PATCH("/posts/:id/comments/:comment_id", post.UpdateComment)
		authed.DELETE("/posts/:id/comments/:comment_id", post.DeleteComment)

		authed.GET("/follow", follow.GetFollowing)
		authed.POST("/follow", follow.FollowUser)

		adminRoutes := authed.Group("/admin")
		adminRoutes.Use(middleware.AdminOnlyMiddleware())
		{
			adminRoutes.POST("/groups", admin.CreateGroup)
			adminRoutes.DELETE("/groups/:id", admin.DeleteGroup)
			adminRoutes.GET("/stats", admin.GetDashboardStats)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Arrêt du serveur", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
