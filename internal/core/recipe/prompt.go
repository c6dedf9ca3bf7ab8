package recipe

import (
	"fmt"
	"math/rand"
	"strings"

	"chuckle-chow/internal/pkg/common"

	"go.uber.org/zap"
)

// randomIngredientsPlaceholder 空食材列表時插入模板的佔位語
const randomIngredientsPlaceholder = "random Southern ingredients"

// PromptBuilder 組裝送往生成服務的自然語言提示詞
// 純粹由輸入與儲存層讀出的風味搭配決定，無共享狀態
type PromptBuilder struct {
	emoji bool
	rng   *rand.Rand
}

// NewPromptBuilder 創建提示詞組裝器
func NewPromptBuilder(emoji bool, rng *rand.Rand) *PromptBuilder {
	return &PromptBuilder{emoji: emoji, rng: rng}
}

// PickExtraIngredient 從風味搭配挑出一個補充食材
// 只看第一個命中的請求食材（單一補充策略，不累加），
// 從其搭配列表中均勻隨機取一個
func PickExtraIngredient(requested []string, pairs common.FlavorPairs, rng *rand.Rand) (string, bool) {
	for _, ing := range requested {
		candidates := pairs[ing]
		if len(candidates) == 0 {
			continue
		}
		extra := candidates[rng.Intn(len(candidates))]
		common.LogDebug("挑選補充食材",
			zap.String("base", ing),
			zap.String("extra", extra),
		)
		return extra, true
	}
	return "", false
}

// Build 組裝生成提示詞
// contextText 非空時（重新演繹既有食譜）附加為參考素材
func (p *PromptBuilder) Build(requested []string, pairs common.FlavorPairs, contextText string) string {
	ingredientList := randomIngredientsPlaceholder
	if len(requested) > 0 {
		all := requested
		if extra, ok := PickExtraIngredient(requested, pairs, p.rng); ok {
			all = append(append([]string{}, requested...), extra)
		}
		ingredientList = strings.Join(all, ", ")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"Create a Southern-style recipe with a hilarious redneck vibe, using %s as key ingredients. ",
		ingredientList))
	b.WriteString("Include a funny title, ingredients with measurements, detailed steps with Southern swagger, equipment needed, ")
	b.WriteString("a quirky 'chaos gear' (e.g., a busted spatula), cooking time, difficulty (easy/medium/hard), servings, ")
	b.WriteString("nutrition info (calories, protein, fat, chaos factor 1-10), and a tip that’s useful but ridiculous. ")
	b.WriteString("Write it in Markdown, like you’re tellin’ a buddy over a beer. Keep it cookable and fun!")

	if p.emoji {
		b.WriteString(" Add emojis to enhance readability: 🥗 for ingredients section, 🥄 or specific emojis (e.g., 🍗 for meats, 🥕 for veggies) after each ingredient, ")
		b.WriteString("🔢 for steps section with ✅ after each step, 🍳 for equipment section with specific emojis (e.g., 🍲 for pans, 🔪 for knives), ")
		b.WriteString("📊 for nutrition with 🔥 for calories, 💪 for protein, 🧈 for fat, 😜 for chaos factor, ⏰ for cooking time, ")
		b.WriteString("🎯 for difficulty, 🍽️ for servings, and 💡 for tips.")
	}

	if contextText != "" {
		b.WriteString(fmt.Sprintf("\n\nRework the following recipe in that style, keeping its ingredients and intent:\n%s", contextText))
	}

	return b.String()
}
