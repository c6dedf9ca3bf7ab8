package recipe

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"chuckle-chow/internal/core/ai/service"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/infrastructure/store"
	"chuckle-chow/internal/pkg/common"

	"go.uber.org/zap"
)

// southernIngredients 隨機食譜的固定主題食材池
var southernIngredients = []string{
	"churrasco", "ground beef", "chicken", "pork", "shrimp", "catfish",
	"green beans", "okra", "collards", "potato", "lemon", "cheese",
	"butter", "grits", "rice", "whiskey", "moonshine", "beer",
}

// 隨機食譜一次取用的食材數量範圍
const (
	minRandomIngredients = 3
	maxRandomIngredients = 6
)

// Preferences 生成偏好
type Preferences struct {
	Locale      common.Locale
	ForceRandom bool   // 跳過匹配，直接走動態生成
	RecipeText  string // 重新演繹模式下的原始食譜文字
}

// Generator 食譜生成協調器
// 流程：匹配 →（未命中時）組提示詞 → 呼叫生成服務
type Generator struct {
	config  *config.Config
	store   *store.Store
	ai      *service.Service
	matcher *Matcher
	prompts *PromptBuilder
	rng     *rand.Rand
}

// lockedSource 以互斥鎖保護的亂數來源
// Generator 在所有請求 goroutine 間共用同一個 rng，
// *rand.Rand 本身不是並發安全的，鎖放在來源層
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// newRNG 建立可安全共用的亂數產生器
func newRNG(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

// NewGenerator 創建食譜生成協調器
func NewGenerator(cfg *config.Config, st *store.Store, ai *service.Service) *Generator {
	rng := newRNG(time.Now().UnixNano())
	return &Generator{
		config:  cfg,
		store:   st,
		ai:      ai,
		matcher: NewMatcher(cfg.Recipe.Emoji),
		prompts: NewPromptBuilder(cfg.Recipe.Emoji, rng),
		rng:     rng,
	}
}

// GenerateDynamic 依請求食材生成食譜
// 先嘗試預定義食譜，未命中（或強制隨機）時轉交外部生成服務；
// 失敗以錯誤回傳，由 HTTP 層轉換為線上契約的文字載荷
func (g *Generator) GenerateDynamic(ctx context.Context, ingredients []string, prefs Preferences) (string, error) {
	common.LogDebug("開始動態生成",
		zap.Strings("ingredients", ingredients),
		zap.Bool("force_random", prefs.ForceRandom),
	)

	if len(ingredients) > 0 && !prefs.ForceRandom {
		recipes, err := g.store.ListRecipes(ctx)
		if err != nil {
			return "", err
		}
		if text, ok := g.matcher.Match(recipes, ingredients, prefs.Locale); ok {
			return text, nil
		}
	}

	pairs, err := g.store.ListFlavorPairs(ctx)
	if err != nil {
		return "", err
	}

	prompt := g.prompts.Build(ingredients, pairs, prefs.RecipeText)
	text, err := g.ai.ProcessRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	common.LogInfo("食譜生成完成",
		zap.Int("content_length", len(text)),
	)
	return text, nil
}

// GenerateRandom 從主題食材池隨機挑選食材並生成食譜
// 匹配步驟被強制跳過
func (g *Generator) GenerateRandom(ctx context.Context, locale common.Locale) (string, error) {
	ingredients := SampleIngredients(southernIngredients, minRandomIngredients, maxRandomIngredients, g.rng)
	common.LogDebug("隨機挑選主題食材",
		zap.Strings("ingredients", ingredients),
	)
	return g.GenerateDynamic(ctx, ingredients, Preferences{Locale: locale, ForceRandom: true})
}

// Elucidate 重新演繹一段既有的食譜文字
// 食材列表為空，匹配步驟因此不會發生
func (g *Generator) Elucidate(ctx context.Context, recipeText string) (string, error) {
	return g.GenerateDynamic(ctx, nil, Preferences{Locale: common.LocaleEnglish, RecipeText: recipeText})
}

// SampleIngredients 從食材池中不放回地抽出 [min,max] 個相異食材
func SampleIngredients(pool []string, min, max int, rng *rand.Rand) []string {
	n := min + rng.Intn(max-min+1)
	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]string, len(pool))
	copy(picked, pool)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}
