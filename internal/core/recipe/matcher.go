package recipe

import (
	"fmt"
	"strings"

	"chuckle-chow/internal/pkg/common"

	"go.uber.org/zap"
)

// Matcher 在庫存食譜中挑選與請求食材完全吻合的一筆
// 輸入之外只依賴儲存層讀出的食譜列表，無共享狀態
type Matcher struct {
	emoji bool
}

// NewMatcher 創建新的匹配器
func NewMatcher(emoji bool) *Matcher {
	return &Matcher{emoji: emoji}
}

// scoredRecipe 候選食譜與其交集分數
type scoredRecipe struct {
	recipe *common.Recipe
	score  int
}

// Match 為請求的食材挑選最佳的預定義食譜並格式化輸出
// 沒有任何食譜通過門檻時回傳 ok=false，這不是錯誤
func (m *Matcher) Match(recipes []common.Recipe, requested []string, locale common.Locale) (string, bool) {
	best, ok := SelectBest(recipes, requested)
	if !ok {
		return "", false
	}

	title := best.Title(locale)
	common.LogInfo("匹配到預定義食譜",
		zap.String("title", title),
		zap.Int64("recipe_id", best.ID),
	)
	return m.Format(best, locale), true
}

// SelectBest 依交集分數挑選食譜
// 分數為請求食材集合與食譜食材集合的交集大小，請求中的重複不計分；
// 同分時以最小識別碼優先（列表依識別碼升冪排列，先遇到者勝出）。
// 門檻：分數需達請求列表長度，亦即每個請求食材都要出現在食譜中
func SelectBest(recipes []common.Recipe, requested []string) (*common.Recipe, bool) {
	if len(requested) == 0 || len(recipes) == 0 {
		return nil, false
	}

	requestedSet := make(map[string]struct{}, len(requested))
	for _, ing := range requested {
		requestedSet[ing] = struct{}{}
	}

	var best scoredRecipe
	for i := range recipes {
		names := make(map[string]struct{})
		for _, ing := range recipes[i].Ingredients {
			names[ing.Name] = struct{}{}
		}

		score := 0
		for name := range requestedSet {
			if _, ok := names[name]; ok {
				score++
			}
		}

		if best.recipe == nil || score > best.score {
			best = scoredRecipe{recipe: &recipes[i], score: score}
		}
	}

	if best.recipe == nil || best.score < len(requested) {
		common.LogDebug("無預定義食譜通過門檻",
			zap.Int("best_score", best.score),
			zap.Int("requested", len(requested)),
		)
		return nil, false
	}
	return best.recipe, true
}

// Format 將食譜輸出為固定版面的文字區塊
// 欄位順序與出現與否是對既有客戶端的契約，不可改動
func (m *Matcher) Format(r *common.Recipe, locale common.Locale) string {
	var b strings.Builder

	if m.emoji {
		b.WriteString(fmt.Sprintf("### **%s** 🎉\n\n", r.Title(locale)))
		b.WriteString("**Ingredients:** 🥗\n")
		for _, ing := range r.Ingredients {
			b.WriteString(fmt.Sprintf("- %s (%s) %s\n", ing.Name, ing.Amount, ingredientEmoji(ing.Name)))
		}
		b.WriteString("\n**Steps:** 🔢\n")
		for i, step := range r.Steps {
			b.WriteString(fmt.Sprintf("%d. %s ✅\n", i+1, step))
		}
		b.WriteString("\n**Nutrition:** 📊\n")
		b.WriteString(fmt.Sprintf("- 🔥 Calories: %d\n", r.Nutrition.Calories))
		b.WriteString(fmt.Sprintf("- 💪 Protein: %dg\n", r.Nutrition.Protein))
		b.WriteString(fmt.Sprintf("- 🧈 Fat: %dg\n", r.Nutrition.Fat))
		b.WriteString(fmt.Sprintf("- 😜 Chaos Factor: %d/10\n", r.Nutrition.ChaosFactor))
		b.WriteString("\n**Equipment Needed:** 🍳\n")
		equipment := make([]string, len(r.Equipment))
		for i, eq := range r.Equipment {
			equipment[i] = fmt.Sprintf("%s %s", eq, equipmentEmoji(eq))
		}
		b.WriteString(strings.Join(equipment, ", "))
		b.WriteString(fmt.Sprintf("\n\n**Cooking Time:** ⏰ %d minutes\n", r.CookingTime))
		b.WriteString(fmt.Sprintf("\n**Difficulty:** 🎯 %s\n", r.Difficulty))
		b.WriteString(fmt.Sprintf("\n**Servings:** 🍽️ %d\n", r.Servings))
		b.WriteString(fmt.Sprintf("\n**Tips:** 💡\n- %s", r.Tips))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("### **%s**\n\n", r.Title(locale)))
	b.WriteString("**Ingredients:**\n")
	for _, ing := range r.Ingredients {
		b.WriteString(fmt.Sprintf("- %s (%s)\n", ing.Name, ing.Amount))
	}
	b.WriteString("\n**Steps:**\n")
	for i, step := range r.Steps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	b.WriteString("\n**Nutrition:**\n")
	b.WriteString(fmt.Sprintf("- Calories: %d\n", r.Nutrition.Calories))
	b.WriteString(fmt.Sprintf("- Protein: %dg\n", r.Nutrition.Protein))
	b.WriteString(fmt.Sprintf("- Fat: %dg\n", r.Nutrition.Fat))
	b.WriteString(fmt.Sprintf("- Chaos Factor: %d/10\n", r.Nutrition.ChaosFactor))
	b.WriteString("\n**Equipment Needed:**\n")
	b.WriteString(strings.Join(r.Equipment, ", "))
	b.WriteString(fmt.Sprintf("\n\n**Cooking Time:** %d minutes\n", r.CookingTime))
	b.WriteString(fmt.Sprintf("\n**Difficulty:** %s\n", r.Difficulty))
	b.WriteString(fmt.Sprintf("\n**Servings:** %d\n", r.Servings))
	b.WriteString(fmt.Sprintf("\n**Tips:**\n- %s", r.Tips))
	return b.String()
}

// ingredientEmojiMap 依食材類型對應表情符號
var ingredientEmojiMap = map[string]string{
	"tofu": "🥗", "chicken": "🍗", "shrimp": "🦐", "pork": "🥓", "ground beef": "🍔",
	"catfish": "🐟", "salmon": "🐟", "pork ribs": "🍖", "black beans": "🥫",
	"kidney beans": "🥫", "bell pepper": "🫑", "broccoli": "🥦", "onion": "🧅",
	"garlic": "🧄", "ginger": "🌱", "apple": "🍎", "mango": "🥭", "lemon": "🍋",
	"lime": "🍈", "avocado": "🥑", "tomato": "🍅", "lettuce": "🥬",
	"green onion": "🧅", "soy sauce": "🥢", "moonshine": "🥃", "tequila": "🍹",
	"bbq sauce": "🥄", "remoulade sauce": "🥄", "sriracha": "🌶️",
	"chili powder": "🌶️", "paprika": "🌶️", "cajun seasoning": "🌶️",
	"fajita seasoning": "🌮", "rosemary": "🌿", "grits": "🥣", "rice": "🍚",
	"pasta": "🍝", "tortilla": "🌮", "baguette": "🥖", "cheddar cheese": "🧀",
	"butter": "🧈", "bacon": "🥓",
}

// equipmentEmojiMap 依設備類型對應表情符號
var equipmentEmojiMap = map[string]string{
	"wok": "🥘", "skillet": "🍳", "roasting pan": "🍲", "baking sheet": "🥧",
	"pot": "🍲", "spatula": "🥄", "toaster": "🍞", "bowl": "🥣", "foil": "📜",
}

// ingredientEmoji 回傳食材對應的表情符號
func ingredientEmoji(ingredient string) string {
	if e, ok := ingredientEmojiMap[strings.ToLower(ingredient)]; ok {
		return e
	}
	return "🥄"
}

// equipmentEmoji 回傳設備對應的表情符號
func equipmentEmoji(equipment string) string {
	if e, ok := equipmentEmojiMap[strings.ToLower(equipment)]; ok {
		return e
	}
	return "🔧"
}
