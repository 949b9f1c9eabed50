package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store defines the interface for recipe data operations.
type Store interface {
	SaveRecipe(ctx context.Context, recipe *Recipe) error
	GetRecipe(ctx context.Context, id string) (*Recipe, error)
	ListRecipes(ctx context.Context, category, cuisine string) ([]*Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// PostgresStore implements the Store interface for PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(dataSourceName string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Create recipes table if not exists
	schema := `
	CREATE TABLE IF NOT EXISTS recipes (
		id TEXT PRIMARY KEY,
		title TEXT,
		source_url TEXT,
		image_urls JSONB,
		ingredients JSONB,
		instructions JSONB,
		prep_time_minutes INTEGER,
		cook_time_minutes INTEGER,
		total_time_minutes INTEGER,
		servings INTEGER,
		cuisine TEXT,
		category TEXT,
		calories INTEGER,
		protein_grams INTEGER,
		carbs_grams INTEGER,
		fat_grams INTEGER,
		description TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipes table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

const recipeColumns = `id, title, source_url, image_urls, ingredients, instructions,
	prep_time_minutes, cook_time_minutes, total_time_minutes, servings,
	cuisine, category, calories, protein_grams, carbs_grams, fat_grams,
	description, notes, created_at`

// SaveRecipe inserts or replaces a recipe.
func (s *PostgresStore) SaveRecipe(ctx context.Context, recipe *Recipe) error {
	imageURLsJSON, err := json.Marshal(recipe.ImageURLs)
	if err != nil {
		return fmt.Errorf("failed to marshal image urls: %w", err)
	}
	ingredientsJSON, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	instructionsJSON, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return fmt.Errorf("failed to marshal instructions: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recipes (id, title, source_url, image_urls, ingredients, instructions,
			prep_time_minutes, cook_time_minutes, total_time_minutes, servings,
			cuisine, category, calories, protein_grams, carbs_grams, fat_grams,
			description, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			title = $2, source_url = $3, image_urls = $4, ingredients = $5,
			instructions = $6, prep_time_minutes = $7, cook_time_minutes = $8,
			total_time_minutes = $9, servings = $10, cuisine = $11, category = $12,
			calories = $13, protein_grams = $14, carbs_grams = $15, fat_grams = $16,
			description = $17, notes = $18`,
		recipe.ID,
		recipe.Title,
		recipe.SourceURL,
		imageURLsJSON,
		ingredientsJSON,
		instructionsJSON,
		recipe.PrepTimeMinutes,
		recipe.CookTimeMinutes,
		recipe.TotalTimeMinutes,
		recipe.Servings,
		recipe.Cuisine,
		recipe.Category,
		recipe.Calories,
		recipe.ProteinGrams,
		recipe.CarbsGrams,
		recipe.FatGrams,
		recipe.Description,
		recipe.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	return nil
}

func scanRecipe(scan func(dest ...any) error) (*Recipe, error) {
	var r Recipe
	var imageURLsJSON, ingredientsJSON, instructionsJSON []byte

	err := scan(
		&r.ID,
		&r.Title,
		&r.SourceURL,
		&imageURLsJSON,
		&ingredientsJSON,
		&instructionsJSON,
		&r.PrepTimeMinutes,
		&r.CookTimeMinutes,
		&r.TotalTimeMinutes,
		&r.Servings,
		&r.Cuisine,
		&r.Category,
		&r.Calories,
		&r.ProteinGrams,
		&r.CarbsGrams,
		&r.FatGrams,
		&r.Description,
		&r.Notes,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imageURLsJSON, &r.ImageURLs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image urls: %w", err)
	}
	if err := json.Unmarshal(ingredientsJSON, &r.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	if err := json.Unmarshal(instructionsJSON, &r.Instructions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instructions: %w", err)
	}

	return &r, nil
}

// GetRecipe retrieves a recipe by its ID.
func (s *PostgresStore) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id = $1", id)

	r, err := scanRecipe(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Recipe not found
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return r, nil
}

// ListRecipes retrieves recipes, optionally filtered by category or cuisine.
func (s *PostgresStore) ListRecipes(ctx context.Context, category, cuisine string) ([]*Recipe, error) {
	var recipes []*Recipe
	var args []interface{}
	query := "SELECT " + recipeColumns + " FROM recipes WHERE 1=1"

	paramCount := 1
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", paramCount)
		args = append(args, category)
		paramCount++
	}
	if cuisine != "" {
		query += fmt.Sprintf(" AND cuisine = $%d", paramCount)
		args = append(args, cuisine)
		paramCount++
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		r, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return recipes, nil
}

// DeleteRecipe removes a recipe by its ID.
func (s *PostgresStore) DeleteRecipe(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}
