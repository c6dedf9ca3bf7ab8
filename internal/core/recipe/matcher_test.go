package recipe

import (
	"strings"
	"testing"

	"chuckle-chow/internal/pkg/common"
)

func fixtureRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:      1,
			TitleEN: "Ginger-Soy Tofu Stir-Fry",
			TitleES: "Salteado de Tofu con Jengibre y Soya",
			Ingredients: []common.Ingredient{
				{Name: "tofu", Amount: "14 oz"},
				{Name: "soy sauce", Amount: "3 tbsp"},
				{Name: "ginger", Amount: "1 tbsp"},
				{Name: "garlic", Amount: "2 cloves"},
				{Name: "bell pepper", Amount: "1"},
				{Name: "broccoli", Amount: "1 cup"},
			},
			Steps:       []string{"Press the tofu", "Stir-fry everything"},
			Nutrition:   common.Nutrition{Calories: 320, Protein: 18, Fat: 14, ChaosFactor: 3},
			CookingTime: 25,
			Difficulty:  "easy",
			Equipment:   []string{"wok", "spatula"},
			Servings:    4,
			Tips:        "Press that tofu like it owes you money.",
		},
		{
			ID:      2,
			TitleEN: "Garlic Broccoli Bowl",
			Ingredients: []common.Ingredient{
				{Name: "garlic", Amount: "4 cloves"},
				{Name: "broccoli", Amount: "2 cups"},
				{Name: "rice", Amount: "1 cup"},
			},
			Steps:     []string{"Cook the rice", "Smother it in garlic broccoli"},
			Nutrition: common.Nutrition{Calories: 280, Protein: 8, Fat: 6, ChaosFactor: 2},
			Equipment: []string{"pot"},
			Servings:  2,
			Tips:      "More garlic.",
		},
		{
			ID:      3,
			TitleEN: "Garlic Broccoli Skillet",
			Ingredients: []common.Ingredient{
				{Name: "garlic", Amount: "4 cloves"},
				{Name: "broccoli", Amount: "2 cups"},
				{Name: "butter", Amount: "2 tbsp"},
			},
			Steps:     []string{"Melt butter", "Fry garlic and broccoli"},
			Nutrition: common.Nutrition{Calories: 240, Protein: 6, Fat: 16, ChaosFactor: 2},
			Equipment: []string{"skillet"},
			Servings:  2,
			Tips:      "Butter fixes everything.",
		},
	}
}

func TestSelectBestEmptyQuery(t *testing.T) {
	if _, ok := SelectBest(fixtureRecipes(), nil); ok {
		t.Fatal("empty query must never match")
	}
	if _, ok := SelectBest(fixtureRecipes(), []string{}); ok {
		t.Fatal("empty query must never match")
	}
}

func TestSelectBestSubsetMatches(t *testing.T) {
	query := []string{"tofu", "soy sauce", "ginger", "garlic", "bell pepper", "broccoli"}
	best, ok := SelectBest(fixtureRecipes(), query)
	if !ok {
		t.Fatal("expected a match for the full ingredient set")
	}
	if best.ID != 1 {
		t.Fatalf("expected recipe 1, got %d", best.ID)
	}

	// A strict subset of the recipe's ingredients also matches.
	best, ok = SelectBest(fixtureRecipes(), []string{"tofu", "ginger"})
	if !ok || best.ID != 1 {
		t.Fatalf("expected subset query to match recipe 1, got ok=%v", ok)
	}
}

func TestSelectBestMissingIngredientFailsGate(t *testing.T) {
	// "chicken" appears in no recipe, so partial overlap must not match.
	if _, ok := SelectBest(fixtureRecipes(), []string{"tofu", "chicken"}); ok {
		t.Fatal("query with an absent ingredient must not match")
	}
}

func TestSelectBestDuplicatesDoNotScore(t *testing.T) {
	best, ok := SelectBest(fixtureRecipes(), []string{"tofu", "tofu", "ginger"})
	if !ok || best.ID != 1 {
		t.Fatalf("duplicate entries should collapse to one set element, got ok=%v", ok)
	}
}

func TestSelectBestTieBreaksOnLowestID(t *testing.T) {
	// Recipes 2 and 3 both contain garlic and broccoli; the first in
	// ascending id order wins.
	best, ok := SelectBest(fixtureRecipes(), []string{"garlic", "broccoli"})
	if !ok {
		t.Fatal("expected a match")
	}
	if best.ID != 2 {
		t.Fatalf("tie must resolve to lowest id, got %d", best.ID)
	}
}

func TestMatchFormatsFixedLayout(t *testing.T) {
	m := NewMatcher(false)
	text, ok := m.Match(fixtureRecipes(), []string{"tofu", "ginger"}, common.LocaleEnglish)
	if !ok {
		t.Fatal("expected a match")
	}

	for _, want := range []string{
		"### **Ginger-Soy Tofu Stir-Fry**",
		"**Ingredients:**",
		"- tofu (14 oz)",
		"**Steps:**",
		"1. Press the tofu",
		"**Nutrition:**",
		"- Calories: 320",
		"- Chaos Factor: 3/10",
		"**Equipment Needed:**",
		"wok, spatula",
		"**Cooking Time:** 25 minutes",
		"**Difficulty:** easy",
		"**Servings:** 4",
		"**Tips:**",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("formatted output missing %q:\n%s", want, text)
		}
	}
}

func TestMatchSpanishTitle(t *testing.T) {
	m := NewMatcher(false)
	text, ok := m.Match(fixtureRecipes(), []string{"tofu"}, common.LocaleSpanish)
	if !ok {
		t.Fatal("expected a match")
	}
	if !strings.Contains(text, "Salteado de Tofu con Jengibre y Soya") {
		t.Fatalf("expected Spanish title, got:\n%s", text)
	}

	// Missing Spanish title falls back to English.
	text, ok = m.Match(fixtureRecipes(), []string{"rice"}, common.LocaleSpanish)
	if !ok {
		t.Fatal("expected a match")
	}
	if !strings.Contains(text, "Garlic Broccoli Bowl") {
		t.Fatalf("expected English fallback title, got:\n%s", text)
	}
}

func TestMatchEmojiLayout(t *testing.T) {
	m := NewMatcher(true)
	text, ok := m.Match(fixtureRecipes(), []string{"tofu", "ginger"}, common.LocaleEnglish)
	if !ok {
		t.Fatal("expected a match")
	}
	for _, want := range []string{
		"🎉",
		"**Ingredients:** 🥗",
		"- tofu (14 oz) 🥗",
		"✅",
		"🔥 Calories: 320",
		"**Cooking Time:** ⏰ 25 minutes",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("emoji output missing %q:\n%s", want, text)
		}
	}
}
