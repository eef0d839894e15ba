package router

import (
	"time"

	"github.com/blues/pts/internal/auth"
	"github.com/blues/pts/internal/config"
	"github.com/blues/pts/internal/handler"
	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/blues/pts/internal/notify"
	"github.com/blues/pts/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	users := repository.NewUserRepo(db)
	projects := repository.NewProjectRepo(db)
	contributors := repository.NewContributorRepo(db)
	issues := repository.NewIssueRepo(db)
	comments := repository.NewCommentRepo(db)
	tokens := repository.NewTokenRepo(db)
	notifications := repository.NewNotificationRepo(db)

	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
	)
	dispatcher, err := notify.NewDispatcher(notifications, cfg.Notify.PoolSize)
	if err != nil {
		return nil, err
	}

	gate := logic.NewAccessGate(projects, contributors)
	refreshTTL := time.Duration(cfg.Auth.RefreshTokenHours) * time.Hour

	userHandler := handler.NewUserHandler(logic.NewUserLogic(users, tokens, tokenManager, refreshTTL))
	projectHandler := handler.NewProjectHandler(logic.NewProjectLogic(projects, gate))
	contributorHandler := handler.NewContributorHandler(logic.NewContributorLogic(contributors, users, gate))
	issueHandler := handler.NewIssueHandler(logic.NewIssueLogic(issues, users, gate, dispatcher))
	commentHandler := handler.NewCommentHandler(logic.NewCommentLogic(comments, issues, gate, dispatcher))
	notificationHandler := handler.NewNotificationHandler(logic.NewNotificationLogic(notifications))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "project-tracking-service",
		})
	})

	r.POST("/signup", userHandler.Signup)
	r.POST("/login", userHandler.Login)
	r.POST("/token/refresh", userHandler.Refresh)

	authed := r.Group("")
	authed.Use(middleware.Auth(tokenManager, users))
	{
		authed.GET("/notifications", notificationHandler.GetNotifications)

		projectRoutes := authed.Group("/projects")
		{
			projectRoutes.POST("", projectHandler.CreateProject)
			projectRoutes.GET("", projectHandler.GetProjects)
			projectRoutes.GET("/:project_id", projectHandler.GetProject)
			projectRoutes.PUT("/:project_id", projectHandler.UpdateProject)
			projectRoutes.DELETE("/:project_id", projectHandler.DeleteProject)

			projectRoutes.POST("/:project_id/users", contributorHandler.AddContributor)
			projectRoutes.GET("/:project_id/users", contributorHandler.GetContributors)
			projectRoutes.DELETE("/:project_id/users/:user_id", contributorHandler.RemoveContributor)

			projectRoutes.POST("/:project_id/issues", issueHandler.CreateIssue)
			projectRoutes.GET("/:project_id/issues", issueHandler.GetIssues)
			projectRoutes.PUT("/:project_id/issues/:issue_id", issueHandler.UpdateIssue)
			projectRoutes.DELETE("/:project_id/issues/:issue_id", issueHandler.DeleteIssue)

			projectRoutes.POST("/:project_id/issues/:issue_id/comments", commentHandler.CreateComment)
			projectRoutes.GET("/:project_id/issues/:issue_id/comments", commentHandler.GetComments)
			projectRoutes.GET("/:project_id/issues/:issue_id/comments/:comment_id", commentHandler.GetComment)
			projectRoutes.PUT("/:project_id/issues/:issue_id/comments/:comment_id", commentHandler.UpdateComment)
			projectRoutes.DELETE("/:project_id/issues/:issue_id/comments/:comment_id", commentHandler.DeleteComment)
		}
	}

	return r, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
