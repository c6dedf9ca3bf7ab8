package recipe

import (
	"context"

	"chuckle-chow/internal/infrastructure/store"
	"chuckle-chow/internal/pkg/common"

	"go.uber.org/zap"
)

// RatingService 評分聚合服務
// 欄位存在性與範圍驗證屬於對外介面層的責任，
// 本服務只透過儲存層確保 recipe_id 存在
type RatingService struct {
	store *store.Store
}

// NewRatingService 創建評分聚合服務
func NewRatingService(st *store.Store) *RatingService {
	return &RatingService{store: st}
}

// Rate 提交評分與選擇性的評論
func (s *RatingService) Rate(ctx context.Context, recipeID int64, rating int, comment string) error {
	if err := s.store.RecordRating(ctx, recipeID, rating, comment); err != nil {
		return err
	}
	common.LogInfo("評分已提交",
		zap.Int64("recipe_id", recipeID),
		zap.Int("rating", rating),
		zap.Bool("has_comment", comment != ""),
	)
	return nil
}

// Comments 列出某食譜的評論，最舊的在前
func (s *RatingService) Comments(ctx context.Context, recipeID int64) ([]common.Comment, error) {
	return s.store.ListComments(ctx, recipeID)
}
