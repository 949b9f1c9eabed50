package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ladle/internal/api"
	"ladle/internal/config"
	"ladle/internal/extract"
	"ladle/internal/logger"
	"ladle/internal/platform/imagehost"
	"ladle/internal/recipe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	defer log.Sync()

	store, err := recipe.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to create store", zap.Error(err))
	}

	extractor := extract.NewExtractor(cfg.FetchTimeout, log)
	rehoster := imagehost.New(cfg.ImageDir, cfg.FetchTimeout, log)
	handler := api.NewHandler(extractor, rehoster, store, log)

	r := gin.Default()
	r.Use(requestid.New())

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/import", handler.Import)
	r.GET("/recipes", handler.ListRecipes)
	r.GET("/recipes/:id", handler.GetRecipe)
	r.PUT("/recipes/:id", handler.UpdateRecipe)
	r.DELETE("/recipes/:id", handler.DeleteRecipe)
	r.GET("/recipes/:id/scaled", handler.ScaledRecipe)
	r.POST("/ingredients/parse", handler.ParseIngredients)
	r.Static("/images", cfg.ImageDir)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
