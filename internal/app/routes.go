package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wallmod/core/internal/middleware"
	"github.com/wallmod/core/internal/modules/feedback"
	"github.com/wallmod/core/internal/modules/moderation"
	"github.com/wallmod/core/internal/modules/review"
	"github.com/wallmod/core/internal/pkg/blobstore"
	"github.com/wallmod/core/internal/pkg/response"
	"github.com/wallmod/core/internal/pkg/walls"
)

func (a *App) registerRoutes(blob blobstore.Blob) {
	r := a.router
	cfg := a.cfg
	authMW := middleware.Auth(cfg)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	appInfo := gin.H{
		"name":    "wallmod-core",
		"version": "1.0.0",
	}

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	// Shared stores and clients
	resultStore := moderation.NewStore(blob, cfg.Namespace)
	feedbackStore := feedback.NewStore(blob, cfg.Namespace)

	invoker := moderation.NewOpenAIInvoker(cfg.OpenAIAPIKey, cfg.ModerationPromptID)
	modClient := moderation.NewClient(invoker, cfg.CommentMaxLength)
	wallClient := walls.New(cfg.APIURL, cfg.APIKey)

	reviewSvc := review.NewService(wallClient, modClient, resultStore, cfg.ModerationPromptID)
	review.NewHandler(reviewSvc).RegisterRoutes(api, authMW)

	feedbackSvc := feedback.NewService(resultStore, feedbackStore)
	feedback.NewHandler(feedbackSvc, cfg.FeedbackMode).RegisterRoutes(api, authMW)
}
