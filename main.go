package main

import (
	"log"
	"time"

	"content-studio/config"
	"content-studio/database"
	scriptsapi "content-studio/internal/api/scripts"
	storyboardapi "content-studio/internal/api/storyboard"
	routes "content-studio/internal/app/http"
	"content-studio/internal/imagegen"
	"content-studio/internal/mediastore"
	"content-studio/internal/scriptgen"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	database.InitDB()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer logger.Sync()

	generator, err := scriptgen.NewClient(config.OLLAMA_HOST, config.OLLAMA_MODEL, config.OLLAMA_TIMEOUT, logger)
	if err != nil {
		log.Fatal("Failed to init generation client:", err)
	}
	scriptsapi.Generator = generator

	storyboardapi.Renderer = imagegen.NewClient(config.IMAGE_API_URL, config.IMAGE_API_TIMEOUT, logger)
	storyboardapi.Media = mediastore.New(config.MEDIA_ROOT, config.TRASH_ROOT)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Actor"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
