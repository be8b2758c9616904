package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"droscher.com/RecipeLab/pkg/model"
)

// RecipeRepository is a mock type for the repository.RecipeRepository interface.
type RecipeRepository struct {
	mock.Mock
}

func (_m *RecipeRepository) recipe(ret mock.Arguments) (*model.Recipe, error) {
	var recipe *model.Recipe
	if ret.Get(0) != nil {
		recipe = ret.Get(0).(*model.Recipe)
	}

	return recipe, ret.Error(1)
}

func (_m *RecipeRepository) InsertRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	return _m.recipe(_m.Called(ctx, recipe))
}

func (_m *RecipeRepository) FindAllRecipes(ctx context.Context) ([]*model.Recipe, error) {
	ret := _m.Called(ctx)

	var recipes []*model.Recipe
	if ret.Get(0) != nil {
		recipes = ret.Get(0).([]*model.Recipe)
	}

	return recipes, ret.Error(1)
}

func (_m *RecipeRepository) FindRecipeByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return _m.recipe(_m.Called(ctx, id))
}

func (_m *RecipeRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe model.Recipe) (*model.Recipe, error) {
	return _m.recipe(_m.Called(ctx, id, recipe))
}

func (_m *RecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	return _m.recipe(_m.Called(ctx, id))
}

// NewRecipeRepository creates a new instance of RecipeRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRecipeRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *RecipeRepository {
	m := &RecipeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
