package schemaorgweb_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/RecipeLab/pkg/model"
	. "droscher.com/RecipeLab/pkg/integrations/schemaorg-web"
)

const graphPage = `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"WebSite","name":"Kitchen"}</script>
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[
  {"@type":"BreadcrumbList"},
  {"@type":["Recipe","NewsArticle"],
   "name":" Chocolate Chip Cookies ",
   "recipeIngredient":["1 cup flour","2 eggs","½ tsp salt","chocolate chips"],
   "recipeInstructions":[
     {"@type":"HowToSection","name":"Dough","itemListElement":[
       {"@type":"HowToStep","text":"preheat oven to 375"},
       {"@type":"HowToStep","text":"mix ingredients"}]},
     {"@type":"HowToStep","text":"bake for 10 minutes"}]}
]}
</script></head><body></body></html>`

const textPage = `<html><head><script type="application/ld+json">
[{"@type":"Recipe","name":"Toast","recipeInstructions":"slice bread\n\ntoast it","recipeIngredient":["2 slices bread"]}]
</script></head></html>`

const unnamedPage = `<html><head><script type="application/ld+json">
{"@type":"Recipe","name":"   ","recipeInstructions":["stir"],"recipeIngredient":["1 cup water"]}
</script><script type="application/ld+json">
{"@type":"Recipe","recipeInstructions":["boil"]}
</script></head></html>`

const plainPage = `<html><head><title>nothing here</title></head></html>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	pages := map[string]string{"/graph": graphPage, "/text": textPage, "/plain": plainPage, "/unnamed": unnamedPage}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, found := pages[r.URL.Path]
		if !found {
			http.NotFound(w, r)

			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFindRecipe_ReadsGraphWithSections(t *testing.T) {
	site := newSite(t)
	integration := NewSchemaOrgWebIntegration(zaptest.NewLogger(t))

	recipe, err := integration.FindRecipe(site.URL + "/graph")
	require.NoError(t, err)

	assert.Equal(t, "Chocolate Chip Cookies", recipe.Name)
	assert.Equal(t, []string{"preheat oven to 375", "mix ingredients", "bake for 10 minutes"}, recipe.Directions)
	assert.Equal(t, []model.Ingredient{
		{Name: "flour", Measurement: "cup", Amount: "1"},
		{Name: "eggs", Amount: "2"},
		{Name: "salt", Measurement: "tsp", Amount: "½"},
		{Name: "chocolate chips"},
	}, recipe.Ingredients)
}

func TestFindRecipe_ReadsTextInstructions(t *testing.T) {
	site := newSite(t)
	integration := NewSchemaOrgWebIntegration(zaptest.NewLogger(t))

	recipe, err := integration.FindRecipe(site.URL + "/text")
	require.NoError(t, err)

	assert.Equal(t, "Toast", recipe.Name)
	assert.Equal(t, []string{"slice bread", "toast it"}, recipe.Directions)
	assert.Equal(t, []model.Ingredient{{Name: "bread", Measurement: "slice", Amount: "2"}}, recipe.Ingredients)
}

func TestFindRecipe_NoRecipeOnPage(t *testing.T) {
	site := newSite(t)
	integration := NewSchemaOrgWebIntegration(zaptest.NewLogger(t))

	recipe, err := integration.FindRecipe(site.URL + "/plain")
	require.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Nil(t, recipe)
}

func TestFindRecipe_UnnamedRecipeIsNotFound(t *testing.T) {
	site := newSite(t)
	integration := NewSchemaOrgWebIntegration(zaptest.NewLogger(t))

	recipe, err := integration.FindRecipe(site.URL + "/unnamed")
	require.ErrorIs(t, err, ErrRecipeNotFound)
	assert.Nil(t, recipe)
}

func TestFindRecipe_MissingPage(t *testing.T) {
	site := newSite(t)
	integration := NewSchemaOrgWebIntegration(zaptest.NewLogger(t))

	recipe, err := integration.FindRecipe(site.URL + "/missing")
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Nil(t, recipe)
}

func TestParseIngredient(t *testing.T) {
	tests := []struct {
		line     string
		expected model.Ingredient
	}{
		{"1 1/2 cups flour", model.Ingredient{Name: "flour", Measurement: "cup", Amount: "1 1/2"}},
		{"2 Tbsp. butter", model.Ingredient{Name: "butter", Measurement: "tbsp", Amount: "2"}},
		{"3 large eggs", model.Ingredient{Name: "large eggs", Amount: "3"}},
		{"salt to taste", model.Ingredient{Name: "salt to taste"}},
		{"2 cups", model.Ingredient{Name: "cups", Amount: "2"}},
		{"12", model.Ingredient{Name: "12"}},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseIngredient(test.line))
		})
	}
}
