package schemaorgweb

import (
	"strings"
	"unicode"

	"droscher.com/RecipeLab/pkg/model"
)

var measurements = map[string]string{
	"c": "cup", "cup": "cup", "cups": "cup",
	"tbsp": "tbsp", "tbs": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"g": "g", "gram": "g", "grams": "g", "kg": "kg",
	"ml": "ml", "l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"pinch": "pinch", "clove": "clove", "cloves": "clove",
	"can": "can", "cans": "can", "slice": "slice", "slices": "slice",
}

// ParseIngredient splits a free text line such as "1 1/2 cups flour" into amount, unit and name.
func ParseIngredient(line string) model.Ingredient {
	fields := strings.Fields(line)

	var amount []string

	for len(fields) > 0 && isQuantity(fields[0]) {
		amount = append(amount, fields[0])
		fields = fields[1:]
	}

	ingredient := model.Ingredient{Amount: strings.Join(amount, " ")}

	if len(amount) > 0 && len(fields) > 1 {
		unit := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		if measurement, found := measurements[unit]; found {
			ingredient.Measurement = measurement
			fields = fields[1:]
		}
	}

	ingredient.Name = strings.Join(fields, " ")

	// a bare quantity stays whole so the ingredient keeps a name
	if ingredient.Name == "" {
		return model.Ingredient{Name: strings.Join(amount, " ")}
	}

	return ingredient
}

func isQuantity(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) && !unicode.Is(unicode.No, r) && !strings.ContainsRune("/.-", r) {
			return false
		}
	}

	return token != "" && strings.IndexFunc(token, func(r rune) bool { return unicode.IsDigit(r) || unicode.Is(unicode.No, r) }) >= 0
}
