package routes

import (
	ideasapi "content-studio/internal/api/ideas"
	prompthouseapi "content-studio/internal/api/prompthouse"
	scriptsapi "content-studio/internal/api/scripts"
	storyboardapi "content-studio/internal/api/storyboard"
	"content-studio/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	// Content recording
	api.GET("/ideas", ideasapi.ListIdeas)
	api.GET("/ideas/all", ideasapi.ListAllIdeas)
	api.POST("/ideas", ideasapi.SubmitIdea)
	api.GET("/ideas/:id", ideasapi.GetIdea)
	api.PUT("/ideas/:id", ideasapi.UpdateIdea)
	api.GET("/ideas/:id/logs", ideasapi.GetIdeaLogs)

	// Trash lifecycle
	api.POST("/ideas/:id/trash", ideasapi.TrashIdea)
	api.POST("/ideas/:id/restore", ideasapi.RestoreIdea)
	api.POST("/ideas/restore", ideasapi.BulkRestoreIdeas)

	// Script generation
	api.GET("/ideas/:id/script/controls", scriptsapi.GetScriptControls)
	api.POST("/ideas/:id/script/generate", scriptsapi.GenerateScript)
	api.PUT("/ideas/:id/scenes/:index", scriptsapi.UpdateScene)

	// Storyboard
	api.POST("/ideas/:id/scenes/:index/image", storyboardapi.GenerateSceneImage)
	api.POST("/images/:id/trash", storyboardapi.TrashSceneImage)

	// Prompt house
	api.GET("/prompt-rules", prompthouseapi.ListRules)
	api.POST("/prompt-rules", prompthouseapi.CreateRule)
	api.GET("/prompt-steps", prompthouseapi.ListSteps)
	api.POST("/prompt-steps", prompthouseapi.CreateStep)
	api.GET("/prompt-templates", prompthouseapi.ListTemplates)
	api.POST("/prompt-templates", prompthouseapi.CreateTemplate)
	api.GET("/prompt-templates/:id", prompthouseapi.GetTemplate)
	api.PUT("/prompt-templates/:id", prompthouseapi.UpdateTemplate)
	api.DELETE("/prompt-templates/:id", prompthouseapi.DeleteTemplate)
	api.GET("/prompt-templates/:id/assembled", prompthouseapi.GetAssembledTemplate)
}
