package schemaorgweb

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/pkg/model"
)

func (s *SchemaOrgWebIntegration) FindRecipe(url string) (*model.Recipe, error) {
	collector := colly.NewCollector(colly.UserAgent(userAgent))
	collector.SetRequestTimeout(requestTimeout)

	var (
		errs   error
		recipe *model.Recipe
	)

	collector.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		if recipe != nil {
			return
		}

		var document any

		err := json.Unmarshal([]byte(element.Text), &document)
		if multierr.AppendInto(&errs, err) {
			s.logger.Warn("failed to parse JSON-LD block", zap.String("url", url), zap.Error(err))

			return
		}

		node := findRecipeNode(document)
		if node == nil {
			return
		}

		// a recipe without a name cannot be stored
		candidate := recipeFromNode(node)
		if candidate.Name == "" {
			s.logger.Warn("skipping unnamed recipe", zap.String("url", url))

			return
		}

		recipe = candidate
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("error while scraping recipe page", zap.String("url", response.Request.URL.String()), zap.Int("status", response.StatusCode), zap.Error(err))
	})

	s.logger.Info("scraping recipe page", zap.String("url", url))

	if err := collector.Visit(url); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, url, err)
	}

	if recipe == nil {
		if errs != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRecipeNotFound, url, errs)
		}

		return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, url)
	}

	s.logger.Info("finished scraping recipe page", zap.String("name", recipe.Name), zap.Int("ingredients", len(recipe.Ingredients)))

	return recipe, nil
}

// findRecipeNode walks a JSON-LD document (object, array or @graph) for the first Recipe.
func findRecipeNode(document any) map[string]any {
	switch node := document.(type) {
	case []any:
		for _, item := range node {
			if found := findRecipeNode(item); found != nil {
				return found
			}
		}
	case map[string]any:
		if isRecipe(node["@type"]) {
			return node
		}

		if graph, found := node["@graph"]; found {
			return findRecipeNode(graph)
		}
	}

	return nil
}

func isRecipe(nodeType any) bool {
	switch value := nodeType.(type) {
	case string:
		return value == "Recipe"
	case []any:
		for _, item := range value {
			if text, ok := item.(string); ok && text == "Recipe" {
				return true
			}
		}
	}

	return false
}

func recipeFromNode(node map[string]any) *model.Recipe {
	recipe := model.Recipe{
		Name:        strings.TrimSpace(stringValue(node["name"])),
		Directions:  directions(node["recipeInstructions"]),
		Ingredients: []model.Ingredient{},
	}

	if lines, ok := node["recipeIngredient"].([]any); ok {
		for _, line := range lines {
			if text := strings.TrimSpace(stringValue(line)); text != "" {
				recipe.Ingredients = append(recipe.Ingredients, ParseIngredient(text))
			}
		}
	}

	recipe.Normalize()

	return &recipe
}

// directions flattens text, HowToStep and HowToSection instructions into ordered lines.
func directions(instructions any) []string {
	var steps []string

	switch value := instructions.(type) {
	case string:
		for _, line := range strings.Split(value, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				steps = append(steps, line)
			}
		}
	case []any:
		for _, item := range value {
			steps = append(steps, directions(item)...)
		}
	case map[string]any:
		if elements, found := value["itemListElement"]; found {
			return directions(elements)
		}

		text := stringValue(value["text"])
		if text == "" {
			text = stringValue(value["name"])
		}

		return directions(text)
	}

	return steps
}

func stringValue(value any) string {
	text, _ := value.(string)

	return text
}
