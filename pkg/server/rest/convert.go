package rest

import (
	"github.com/google/uuid"

	"droscher.com/RecipeLab/pkg/model"
)

func RecipesFromModel(recipes []*model.Recipe) []*Recipe {
	restRecipes := make([]*Recipe, 0, len(recipes))

	for _, recipe := range recipes {
		restRecipes = append(restRecipes, RecipeFromModel(recipe))
	}

	return restRecipes
}

func RecipeFromModel(recipe *model.Recipe) *Recipe {
	restRecipe := Recipe{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Directions:  make([]string, 0, len(recipe.Directions)),
		Ingredients: make([]Ingredient, 0, len(recipe.Ingredients)),
	}

	restRecipe.Directions = append(restRecipe.Directions, recipe.Directions...)

	for _, ingredient := range recipe.Ingredients {
		restRecipe.Ingredients = append(restRecipe.Ingredients, Ingredient{
			Name:        ingredient.Name,
			Measurement: ingredient.Measurement,
			Amount:      ingredient.Amount,
		})
	}

	return &restRecipe
}

// RecipeToModel expects a validated request.
func RecipeToModel(request *RecipeRequest) model.Recipe {
	recipe := model.Recipe{
		Name:        *request.Name,
		Directions:  append([]string{}, request.Directions...),
		Ingredients: make([]model.Ingredient, 0, len(request.Ingredients)),
	}

	for _, ingredient := range request.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{
			Name:        ingredient.Name,
			Measurement: ingredient.Measurement,
			Amount:      ingredient.Amount,
		})
	}

	return recipe
}

func LogsFromModel(logs []*model.Log) []*Log {
	restLogs := make([]*Log, 0, len(logs))

	for _, log := range logs {
		restLogs = append(restLogs, LogFromModel(log))
	}

	return restLogs
}

func LogFromModel(log *model.Log) *Log {
	return &Log{
		ID:          log.ID.String(),
		DateOfEvent: NewDate(log.DateOfEvent),
		Notes:       log.Notes,
		Rating:      log.Rating,
		RecipeID:    log.RecipeID.String(),
	}
}

// LogToModel expects a validated request, so RecipeID is a well formed UUID.
func LogToModel(request *LogRequest) model.Log {
	return model.Log{
		DateOfEvent: request.DateOfEvent.Time,
		Notes:       *request.Notes,
		Rating:      int(*request.Rating),
		RecipeID:    uuid.MustParse(*request.RecipeID),
	}
}
