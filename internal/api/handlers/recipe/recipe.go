package recipe

import (
	"net/http"
	"strconv"

	recipeService "chuckle-chow/internal/core/recipe"
	"chuckle-chow/internal/infrastructure/store"
	"chuckle-chow/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRequest 生成食譜請求
type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`         // 請求食材，可為空
	IsRandom    bool     `json:"isRandom"`            // 是否忽略食材走隨機生成
	Language    string   `json:"language,omitempty"`  // english | spanish
	RequestID   string   `json:"requestId,omitempty"` // 用戶端自帶的追蹤編號
}

// GenerateResponse 生成結果，失敗時同樣以 text 載荷回傳錯誤訊息
type GenerateResponse struct {
	Text string `json:"text"`
}

// ElucidateRequest 重新演繹既有食譜文字的請求
type ElucidateRequest struct {
	RecipeText string `json:"recipeText"`
}

// RateRequest 評分請求
type RateRequest struct {
	RecipeID *int64 `json:"recipe_id"`
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

// CommentResponse 單筆留言
type CommentResponse struct {
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// Handler 食譜處理程序
type Handler struct {
	generator *recipeService.Generator
	ratings   *recipeService.RatingService
	store     *store.Store
}

// NewHandler 創建新的食譜處理程序
func NewHandler(generator *recipeService.Generator, ratings *recipeService.RatingService, st *store.Store) *Handler {
	return &Handler{
		generator: generator,
		ratings:   ratings,
		store:     st,
	}
}

// 生成與變更類端點的回應一律不可被快取
func setNoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// HandleGenerate 依食材生成食譜
// 失敗時以 {"text": 訊息} 載荷回傳，與行動端既有的解析邏輯相容
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Invalid JSON format - " + err.Error()})
		return
	}

	locale := common.ParseLocale(req.Language)

	var (
		text string
		err  error
	)
	if req.IsRandom {
		text, err = h.generator.GenerateRandom(c.Request.Context(), locale)
	} else {
		text, err = h.generator.GenerateDynamic(c.Request.Context(), req.Ingredients, recipeService.Preferences{Locale: locale})
	}
	if err != nil {
		common.LogError("食譜生成失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusInternalServerError, GenerateResponse{Text: "Server error: Failed to generate recipe - " + err.Error()})
		return
	}

	common.LogInfo("食譜生成成功",
		zap.String("request_id", requestID),
		zap.Int("content_length", len(text)),
	)

	setNoStore(c)
	c.JSON(http.StatusOK, GenerateResponse{Text: text})
}

// HandleElucidate 重新演繹一段既有的食譜文字
func (h *Handler) HandleElucidate(c *gin.Context) {
	requestID := ensureRequestID(c)

	common.LogInfo("開始處理食譜演繹請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req ElucidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Invalid JSON format - " + err.Error()})
		return
	}
	if req.RecipeText == "" {
		common.LogError("缺少 recipeText 欄位",
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Missing recipeText in request body"})
		return
	}

	text, err := h.generator.Elucidate(c.Request.Context(), req.RecipeText)
	if err != nil {
		common.LogError("食譜演繹失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusInternalServerError, GenerateResponse{Text: "Server error: Failed to elucidate recipe"})
		return
	}

	common.LogInfo("食譜演繹成功",
		zap.String("request_id", requestID),
		zap.Int("content_length", len(text)),
	)

	setNoStore(c)
	c.JSON(http.StatusOK, GenerateResponse{Text: text})
}

// HandleIngredients 回傳風味配對表
func (h *Handler) HandleIngredients(c *gin.Context) {
	pairs, err := h.store.ListFlavorPairs(c.Request.Context())
	if err != nil {
		common.LogError("讀取風味配對失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, pairs)
}

// HandleRate 提交評分與選填留言
func (h *Handler) HandleRate(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("評分請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Invalid JSON format - " + err.Error()})
		return
	}
	if req.RecipeID == nil || req.Rating == nil {
		common.LogError("評分請求缺少必要欄位",
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Missing recipe_id or rating in request body"})
		return
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		common.LogError("評分數值無效",
			zap.Int("rating", *req.Rating),
			zap.String("request_id", requestID),
		)
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Rating must be an integer between 1 and 5"})
		return
	}

	if err := h.ratings.Rate(c.Request.Context(), *req.RecipeID, *req.Rating, req.Comment); err != nil {
		setNoStore(c)
		if common.IsNotFoundError(err) {
			common.LogWarn("評分對象不存在",
				zap.Int64("recipe_id", *req.RecipeID),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusNotFound, GenerateResponse{Text: "Server error: " + err.Error()})
			return
		}
		common.LogError("評分寫入失敗",
			zap.Error(err),
			zap.Int64("recipe_id", *req.RecipeID),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, GenerateResponse{Text: "Server error: " + err.Error()})
		return
	}

	common.LogInfo("評分提交成功",
		zap.Int64("recipe_id", *req.RecipeID),
		zap.Int("rating", *req.Rating),
		zap.String("request_id", requestID),
	)

	setNoStore(c)
	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

// HandleComments 列出指定食譜的留言，最舊在前
func (h *Handler) HandleComments(c *gin.Context) {
	rawID := c.Query("recipe_id")
	if rawID == "" {
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Missing recipe_id query parameter"})
		return
	}

	recipeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		setNoStore(c)
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: recipe_id must be an integer"})
		return
	}

	comments, err := h.ratings.Comments(c.Request.Context(), recipeID)
	if err != nil {
		common.LogError("讀取留言失敗",
			zap.Error(err),
			zap.Int64("recipe_id", recipeID),
		)
		setNoStore(c)
		c.JSON(http.StatusInternalServerError, GenerateResponse{Text: "Server error: " + err.Error()})
		return
	}

	response := make([]CommentResponse, len(comments))
	for i, cm := range comments {
		response[i] = CommentResponse{
			Comment:   cm.Comment,
			CreatedAt: cm.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
	}

	setNoStore(c)
	c.JSON(http.StatusOK, response)
}

// HandleShare 產生指定食譜的分享文字
func (h *Handler) HandleShare(c *gin.Context) {
	rawID := c.Query("recipe_id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: Missing recipe_id query parameter"})
		return
	}

	recipeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Text: "Server error: recipe_id must be an integer"})
		return
	}

	locale := common.ParseLocale(c.Query("language"))

	recipes, err := h.store.ListRecipes(c.Request.Context())
	if err != nil {
		common.LogError("讀取食譜失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, GenerateResponse{Text: "Server error: " + err.Error()})
		return
	}

	for i := range recipes {
		if recipes[i].ID == recipeID {
			c.JSON(http.StatusOK, GenerateResponse{Text: recipeService.RenderShareText(&recipes[i], locale)})
			return
		}
	}

	c.JSON(http.StatusNotFound, GenerateResponse{Text: "Server error: Recipe not found"})
}
