package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeLab/pkg/model"
)

const recipeResource = "recipe"

type RecipeRepository interface {
	InsertRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error)
	FindAllRecipes(ctx context.Context) ([]*model.Recipe, error)
	FindRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
}

func (r *Repository) InsertRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	recipe.ID = uuid.New()
	recipe.Normalize()

	if result := r.DB.WithContext(ctx).Create(&recipe); result.Error != nil {
		r.Logger.Error("error inserting recipe", zap.String("name", recipe.Name), zap.Error(result.Error))

		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) FindAllRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	if result := r.DB.WithContext(ctx).Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	if recipes == nil {
		recipes = []*model.Recipe{}
	}

	for _, recipe := range recipes {
		recipe.Normalize()
	}

	return recipes, nil
}

func (r *Repository) FindRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).First(&recipe, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, notFound(recipeResource, id)
		}

		return nil, result.Error
	}

	recipe.Normalize()

	return &recipe, nil
}

func (r *Repository) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe model.Recipe) (*model.Recipe, error) {
	recipe.ID = id
	recipe.Normalize()

	result := r.DB.WithContext(ctx).Model(&recipe).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Select("name", "directions", "ingredients").
		Updates(&recipe)
	if result.Error != nil {
		r.Logger.Error("error updating recipe", zap.Stringer("id", id), zap.Error(result.Error))

		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, notFound(recipeResource, id)
	}

	recipe.Normalize()

	return &recipe, nil
}

func (r *Repository) DeleteRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&recipe)
	if result.Error != nil {
		r.Logger.Error("error deleting recipe", zap.Stringer("id", id), zap.Error(result.Error))

		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, notFound(recipeResource, id)
	}

	recipe.Normalize()

	return &recipe, nil
}
