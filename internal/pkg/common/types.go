package common

import "time"

// Locale 輸出語言
type Locale string

const (
	LocaleEnglish Locale = "english"
	LocaleSpanish Locale = "spanish"
)

// ParseLocale 解析語言字串，未知值一律視為英文
func ParseLocale(s string) Locale {
	if Locale(s) == LocaleSpanish {
		return LocaleSpanish
	}
	return LocaleEnglish
}

// Ingredient 食材（名稱加上自由文字的份量）
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Nutrition 營養摘要
// ChaosFactor 為主題性的 1-10 主觀評分，純裝飾用途
type Nutrition struct {
	Calories    int `json:"calories"`
	Protein     int `json:"protein"`
	Fat         int `json:"fat"`
	ChaosFactor int `json:"chaos_factor"`
}

// Recipe 食譜
type Recipe struct {
	ID          int64        `json:"id"`
	TitleEN     string       `json:"title_en"`
	TitleES     string       `json:"title_es"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Nutrition   Nutrition    `json:"nutrition"`
	CookingTime int          `json:"cooking_time"` // 分鐘
	Difficulty  string       `json:"difficulty"`   // easy / medium / hard
	Equipment   []string     `json:"equipment"`
	Servings    int          `json:"servings"`
	Tips        string       `json:"tips"`
	Rating      float64      `json:"rating"`
	RatingCount int          `json:"rating_count"`
}

// Title 回傳指定語言的標題，西班牙文標題缺漏時回退英文
func (r *Recipe) Title(locale Locale) string {
	if locale == LocaleSpanish && r.TitleES != "" {
		return r.TitleES
	}
	return r.TitleEN
}

// IngredientNames 回傳食譜的食材名稱列表
func (r *Recipe) IngredientNames() []string {
	names := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		names[i] = ing.Name
	}
	return names
}

// Comment 食譜評論
type Comment struct {
	ID        int64     `json:"id"`
	RecipeID  int64     `json:"recipe_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FlavorPairs 食材到常見搭配食材的映射，只作為提示來源
type FlavorPairs map[string][]string
