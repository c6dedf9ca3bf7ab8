package recipe

import (
	"fmt"
	"strings"

	"chuckle-chow/internal/pkg/common"
)

// shareBaseURL 分享文字末尾附上的站點連結
const shareBaseURL = "https://chuckle-chow-backend.onrender.com"

// RenderShareText 產生可分享的食譜摘要文字
func RenderShareText(r *common.Recipe, locale common.Locale) string {
	ingredients := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = fmt.Sprintf("%s (%s)", ing.Name, ing.Amount)
	}

	steps := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = fmt.Sprintf("Step %d: %s", i+1, step)
	}

	nutrition := fmt.Sprintf("Calories: %d, Protein: %dg, Fat: %dg, Chaos Factor: %d/10",
		r.Nutrition.Calories, r.Nutrition.Protein, r.Nutrition.Fat, r.Nutrition.ChaosFactor)

	return fmt.Sprintf("Check out my *Chuckle & Chow* recipe: %s!\n\nIngredients: %s\n\nInstructions: %s\n\nNutrition: %s\n\nTry it at %s!",
		r.Title(locale),
		strings.Join(ingredients, ", "),
		strings.Join(steps, "; "),
		nutrition,
		shareBaseURL,
	)
}
