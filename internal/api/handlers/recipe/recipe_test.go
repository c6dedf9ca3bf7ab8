package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chuckle-chow/internal/core/ai/service"
	recipeService "chuckle-chow/internal/core/recipe"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/infrastructure/store"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
)

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		XAI: config.XAIConfig{
			APIKey:      apiKey,
			Model:       "grok-beta",
			MaxTokens:   6000,
			Temperature: 0.7,
			Timeout:     5 * time.Second,
		},
		Recipe: config.RecipeConfig{DefaultLocale: "english"},
	}
}

func setupHandler(t *testing.T, cfg *config.Config) (*Handler, *store.Store, *service.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	st, err := store.NewWithDB(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	aiSvc := service.NewService(cfg, nil)
	t.Cleanup(func() { aiSvc.Close() })

	generator := recipeService.NewGenerator(cfg, st, aiSvc)
	ratings := recipeService.NewRatingService(st)
	return NewHandler(generator, ratings, st), st, aiSvc
}

func setupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/generate_recipe", h.HandleGenerate)
	r.POST("/elucidate_recipe", h.HandleElucidate)
	r.GET("/ingredients", h.HandleIngredients)
	r.POST("/rate_recipe", h.HandleRate)
	r.GET("/recipe_comments", h.HandleComments)
	r.GET("/share_recipe", h.HandleShare)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateMatchesSeedRecipe(t *testing.T) {
	// No API key configured: a predefined match must not need one.
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/generate_recipe",
		`{"ingredients":["tofu","soy sauce","ginger","garlic","bell pepper","broccoli"],"isRandom":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Text, "Ginger-Soy Tofu Stir-Fry") {
		t.Fatalf("expected matched recipe text, got: %s", resp.Text)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Fatalf("expected no-store cache header, got %q", cc)
	}
}

func TestGenerateUpstreamPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","choices":[{"message":{"role":"assistant","content":"## Swamp Thing Stew"}}]}`))
	}))
	defer srv.Close()

	h, _, aiSvc := setupHandler(t, testConfig("test-key"))
	aiSvc.Client().SetBaseURL(srv.URL)
	r := setupRouter(h)

	// No stored recipe contains "possum", so generation goes upstream.
	w := doJSON(r, http.MethodPost, "/generate_recipe", `{"ingredients":["possum"],"isRandom":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text != "## Swamp Thing Stew" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/generate_recipe", `{"ingredients":["possum"],"isRandom":false}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Text, "Server error:") || !strings.Contains(resp.Text, "API key not configured") {
		t.Fatalf("unexpected failure payload %q", resp.Text)
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/generate_recipe", `{broken`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Server error: Invalid JSON format") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestElucidateMissingText(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/elucidate_recipe", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing recipeText") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestElucidateDelegatesUpstream(t *testing.T) {
	var gotPrompt struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPrompt)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","choices":[{"message":{"role":"assistant","content":"reworked"}}]}`))
	}))
	defer srv.Close()

	h, _, aiSvc := setupHandler(t, testConfig("test-key"))
	aiSvc.Client().SetBaseURL(srv.URL)
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/elucidate_recipe", `{"recipeText":"boil water, add sadness"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(gotPrompt.Messages) == 0 || !strings.Contains(gotPrompt.Messages[0].Content, "boil water, add sadness") {
		t.Fatalf("recipe text not forwarded in prompt: %+v", gotPrompt)
	}
}

func TestIngredientsListing(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodGet, "/ingredients", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var pairs map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &pairs); err != nil {
		t.Fatalf("decode pairs: %v", err)
	}
	if len(pairs) != 9 {
		t.Fatalf("expected 9 flavor pairs, got %d", len(pairs))
	}
	if len(pairs["tofu"]) == 0 {
		t.Fatal("expected tofu pairings")
	}
}

func TestRateRecipe(t *testing.T) {
	h, st, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/rate_recipe", `{"recipe_id":1,"rating":5,"comment":"dang good"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Rating submitted successfully") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	comments, err := st.ListComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Comment != "dang good" {
		t.Fatalf("comment not persisted: %+v", comments)
	}
}

func TestRateRecipeValidation(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"rating":5}`, "Missing recipe_id or rating"},
		{"rating too high", `{"recipe_id":1,"rating":6}`, "between 1 and 5"},
		{"rating too low", `{"recipe_id":1,"rating":0}`, "between 1 and 5"},
		{"non-integer rating", `{"recipe_id":1,"rating":4.5}`, "Invalid JSON format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/rate_recipe", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("expected %q in body: %s", tc.want, w.Body.String())
			}
		})
	}
}

func TestRateRecipeNotFound(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/rate_recipe", `{"recipe_id":9999,"rating":5}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCommentsListing(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodGet, "/recipe_comments", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without recipe_id, got %d", w.Code)
	}

	doJSON(r, http.MethodPost, "/rate_recipe", `{"recipe_id":2,"rating":4,"comment":"first"}`)
	doJSON(r, http.MethodPost, "/rate_recipe", `{"recipe_id":2,"rating":5,"comment":"second"}`)

	w = doJSON(r, http.MethodGet, "/recipe_comments?recipe_id=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var comments []CommentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &comments); err != nil {
		t.Fatalf("decode comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Comment != "first" || comments[1].Comment != "second" {
		t.Fatalf("comments out of order: %+v", comments)
	}
	if comments[0].CreatedAt == "" {
		t.Fatal("expected created_at timestamp")
	}
}

func TestCommentsUnknownRecipeEmptyList(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodGet, "/recipe_comments?recipe_id=424242", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}
}

func TestShareRecipe(t *testing.T) {
	h, _, _ := setupHandler(t, testConfig(""))
	r := setupRouter(h)

	w := doJSON(r, http.MethodGet, "/share_recipe?recipe_id=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Text, "Ginger-Soy Tofu Stir-Fry") {
		t.Fatalf("share text missing title: %s", resp.Text)
	}

	w = doJSON(r, http.MethodGet, "/share_recipe?recipe_id=424242", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown recipe, got %d", w.Code)
	}
}
