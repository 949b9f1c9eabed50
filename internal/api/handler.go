package api

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ladle/internal/extract"
	"ladle/internal/recipe"
)

// Extractor defines the interface for turning a recipe page URL into an
// extracted recipe.
type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*extract.ExtractedRecipe, error)
}

// ImageHost defines the interface for rehosting a remote image and
// returning its durable URL.
type ImageHost interface {
	Rehost(ctx context.Context, rawURL string) (string, error)
}

// RecipeStore defines the interface for recipe data operations.
type RecipeStore interface {
	SaveRecipe(ctx context.Context, recipe *recipe.Recipe) error
	GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error)
	ListRecipes(ctx context.Context, category, cuisine string) ([]*recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// Handler handles HTTP requests.
type Handler struct {
	Extractor Extractor
	ImageHost ImageHost
	Store     RecipeStore
	Log       *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(extractor Extractor, imageHost ImageHost, store RecipeStore, log *zap.Logger) *Handler {
	return &Handler{Extractor: extractor, ImageHost: imageHost, Store: store, Log: log}
}

type importRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// Import extracts a recipe from a web page, rehosts its images, parses its
// ingredient lines and saves the result.
func (h *Handler) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid url is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	extracted, err := h.Extractor.Extract(ctx, req.URL)
	if err != nil {
		var fetchErr *extract.FetchError
		switch {
		case errors.Is(err, extract.ErrNoRecipeFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "could not extract recipe from this URL, site may not support automatic import",
			})
		case errors.As(err, &fetchErr):
			h.Log.Warn("page fetch failed", zap.String("url", req.URL), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to fetch, check the URL"})
		default:
			h.Log.Error("extraction failed", zap.String("url", req.URL), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "extraction failed"})
		}
		return
	}

	// A failed rehost drops that one image only; the import proceeds with
	// whatever succeeded.
	var hosted []string
	for _, imageURL := range extracted.ImageURLs {
		hostedURL, err := h.ImageHost.Rehost(ctx, imageURL)
		if err != nil {
			h.Log.Warn("failed to rehost image", zap.String("image_url", imageURL), zap.Error(err))
			continue
		}
		hosted = append(hosted, hostedURL)
	}

	rec := recipe.FromExtracted(extracted)
	rec.ID = uuid.NewString()
	rec.ImageURLs = hosted

	if err := h.Store.SaveRecipe(ctx, rec); err != nil {
		h.Log.Error("failed to save recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListRecipes handles requests to retrieve recipes, optionally filtered by
// category or cuisine.
func (h *Handler) ListRecipes(c *gin.Context) {
	category := c.Query("category")
	cuisine := c.Query("cuisine")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Store.ListRecipes(ctx, category, cuisine)
	if err != nil {
		h.Log.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if recipes == nil {
		recipes = []*recipe.Recipe{}
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles requests to retrieve a single recipe by ID.
func (h *Handler) GetRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Store.GetRecipe(ctx, c.Param("id"))
	if err != nil {
		h.Log.Error("failed to get recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// UpdateRecipe handles requests to replace a stored recipe.
func (h *Handler) UpdateRecipe(c *gin.Context) {
	var body recipe.Recipe
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	id := c.Param("id")
	existing, err := h.Store.GetRecipe(ctx, id)
	if err != nil {
		h.Log.Error("failed to get recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	body.ID = id
	body.CreatedAt = existing.CreatedAt
	if err := h.Store.SaveRecipe(ctx, &body); err != nil {
		h.Log.Error("failed to update recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, &body)
}

// DeleteRecipe handles requests to remove a recipe.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.DeleteRecipe(ctx, c.Param("id")); err != nil {
		h.Log.Error("failed to delete recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.Status(http.StatusNoContent)
}

type scaledIngredient struct {
	Amount string `json:"amount,omitempty"`
	Name   string `json:"name"`
}

// ScaledRecipe returns a recipe's ingredient list rescaled by a serving
// multiplier. Scaling happens at render time; nothing is persisted.
func (h *Handler) ScaledRecipe(c *gin.Context) {
	multiplier, err := strconv.ParseFloat(c.DefaultQuery("multiplier", "1"), 64)
	if err != nil || multiplier <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multiplier must be a positive number"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Store.GetRecipe(ctx, c.Param("id"))
	if err != nil {
		h.Log.Error("failed to get recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	scaled := make([]scaledIngredient, 0, len(rec.Ingredients))
	for _, ing := range rec.Ingredients {
		s := scaledIngredient{Amount: ing.Amount, Name: ing.Name}
		if ing.Amount != "" {
			s.Amount = extract.ScaleAmount(ing.Amount, multiplier)
		} else {
			// Legacy entries keep the amount inside the name; scaling is a
			// no-op there unless the name leads with a number.
			s.Name = extract.ScaleAmount(ing.Name, multiplier)
		}
		scaled = append(scaled, s)
	}

	resp := gin.H{
		"id":          rec.ID,
		"title":       rec.Title,
		"multiplier":  multiplier,
		"ingredients": scaled,
	}
	if rec.Servings != nil {
		resp["servings"] = int(math.Round(float64(*rec.Servings) * multiplier))
	}

	c.JSON(http.StatusOK, resp)
}

type parseRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ParseIngredients splits manually typed ingredient lines into amount/name
// pairs, the same parse the importer applies. Empty lines are dropped.
func (h *Handler) ParseIngredients(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lines are required"})
		return
	}

	parsed := make([]extract.ParsedIngredient, 0, len(req.Lines))
	for _, line := range req.Lines {
		p := extract.ParseIngredientLine(line)
		if p.Name == "" {
			continue
		}
		parsed = append(parsed, p)
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": parsed})
}
