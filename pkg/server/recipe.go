package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/pkg/model"
	"droscher.com/RecipeLab/pkg/repository"
	"droscher.com/RecipeLab/pkg/server/rest"
)

const recipeResource = "recipe"

type recipeFinder interface {
	FindRecipe(url string) (*model.Recipe, error)
}

type RecipeServer struct {
	logger     *zap.Logger
	repository repository.RecipeRepository
	finder     recipeFinder
	validate   *validator.Validate
}

func NewRecipeServer(repo repository.RecipeRepository, finder recipeFinder, validate *validator.Validate, logger *zap.Logger) *RecipeServer {
	return &RecipeServer{repository: repo, finder: finder, validate: validate, logger: logger}
}

func (s *RecipeServer) Register(mux *http.ServeMux, basePath string) {
	base := basePath + "/recipes"

	mux.HandleFunc("POST "+base, s.CreateRecipe)
	mux.HandleFunc("POST "+base+"/import", s.ImportRecipe)
	mux.HandleFunc("GET "+base, s.GetRecipes)
	mux.HandleFunc("GET "+base+"/{id}", s.GetRecipe)
	mux.HandleFunc("PUT "+base+"/{id}", s.UpdateRecipe)
	mux.HandleFunc("DELETE "+base+"/{id}", s.DeleteRecipe)
}

func (s *RecipeServer) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var request rest.RecipeRequest

	if err := decodeJSON(w, r, &request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	// lists are optional on create
	if request.Directions == nil {
		request.Directions = []string{}
	}

	if request.Ingredients == nil {
		request.Ingredients = []rest.Ingredient{}
	}

	if err := s.validate.Struct(&request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	recipe, err := s.repository.InsertRecipe(r.Context(), rest.RecipeToModel(&request))
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusCreated, rest.RecipeFromModel(recipe))
}

func (s *RecipeServer) ImportRecipe(w http.ResponseWriter, r *http.Request) {
	var request rest.ImportRecipeRequest

	if err := decodeJSON(w, r, &request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	if err := s.validate.Struct(&request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	found, err := s.finder.FindRecipe(request.URL)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	recipe, err := s.repository.InsertRecipe(r.Context(), *found)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	s.logger.Info("imported recipe", zap.String("url", request.URL), zap.Stringer("id", recipe.ID))

	writeJSON(w, s.logger, http.StatusCreated, rest.RecipeFromModel(recipe))
}

func (s *RecipeServer) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.repository.FindAllRecipes(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.RecipesFromModel(recipes))
}

func (s *RecipeServer) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, recipeResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	recipe, err := s.repository.FindRecipeByID(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.RecipeFromModel(recipe))
}

func (s *RecipeServer) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, recipeResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	var request rest.RecipeRequest

	if err := decodeJSON(w, r, &request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	if err := s.validate.Struct(&request); err != nil {
		WriteError(w, s.logger, err)

		return
	}

	recipe, err := s.repository.UpdateRecipe(r.Context(), id, rest.RecipeToModel(&request))
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.RecipeFromModel(recipe))
}

func (s *RecipeServer) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, recipeResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	recipe, err := s.repository.DeleteRecipe(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.RecipeFromModel(recipe))
}
