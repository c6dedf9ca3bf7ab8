package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"chuckle-chow/internal/pkg/common"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS recipes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title_en TEXT NOT NULL,
	title_es TEXT,
	ingredients TEXT NOT NULL,
	steps TEXT NOT NULL,
	nutrition TEXT,
	cooking_time INTEGER,
	difficulty TEXT,
	equipment TEXT,
	servings INTEGER,
	tips TEXT,
	rating REAL DEFAULT 0.0,
	rating_count INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recipe_comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recipe_id INTEGER NOT NULL,
	comment TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (recipe_id) REFERENCES recipes(id)
);

CREATE TABLE IF NOT EXISTS flavor_pairs (
	ingredient TEXT PRIMARY KEY,
	pairs TEXT NOT NULL
)`

// Store 食譜持久化儲存
// 所有實體的生命週期都由 Store 獨佔管理
type Store struct {
	db *sql.DB
}

// Open 開啟資料庫並初始化結構，空庫時寫入種子資料
// _txlock=immediate 讓交易一開始就取得寫鎖，
// 並發的評分交易因此排隊等待（busy_timeout 內）而不是互相死鎖
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_fk=1&_txlock=immediate", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB 以既有連線建立 Store（測試用 :memory: 連線走這裡）
func NewWithDB(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// init 建表並在空庫時寫入種子資料，重啟時不重複播種
func (s *Store) init() error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.seed(); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	return nil
}

// seed 寫入預定義食譜與風味搭配
func (s *Store) seed() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range seedRecipes {
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return err
		}
		steps, err := json.Marshal(r.Steps)
		if err != nil {
			return err
		}
		nutrition, err := json.Marshal(r.Nutrition)
		if err != nil {
			return err
		}
		equipment, err := json.Marshal(r.Equipment)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`
			INSERT INTO recipes (title_en, title_es, ingredients, steps, nutrition, cooking_time, difficulty, equipment, servings, tips)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.TitleEN, r.TitleES, string(ingredients), string(steps), string(nutrition),
			r.CookingTime, r.Difficulty, string(equipment), r.Servings, r.Tips,
		); err != nil {
			return err
		}
	}

	for ingredient, pairs := range seedFlavorPairs {
		data, err := json.Marshal(pairs)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO flavor_pairs (ingredient, pairs) VALUES (?, ?)`, ingredient, string(data)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	common.LogInfo("種子資料寫入完成",
		zap.Int("食譜數", len(seedRecipes)),
		zap.Int("風味搭配數", len(seedFlavorPairs)),
	)
	return nil
}

// ListRecipes 回傳所有食譜（結構化欄位）
// 單列 JSON 解析失敗時略過該列並記錄，不中斷整批查詢
func (s *Store) ListRecipes(ctx context.Context) ([]common.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title_en, title_es, ingredients, steps, nutrition, cooking_time, difficulty, equipment, servings, tips, rating, rating_count
		FROM recipes ORDER BY id`)
	if err != nil {
		common.LogError("查詢食譜失敗", zap.Error(err))
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []common.Recipe
	for rows.Next() {
		var (
			r           common.Recipe
			titleES     sql.NullString
			tips        sql.NullString
			ingredients string
			steps       string
			nutrition   sql.NullString
			equipment   sql.NullString
			cookingTime sql.NullInt64
			difficulty  sql.NullString
			servings    sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &r.TitleEN, &titleES, &ingredients, &steps, &nutrition,
			&cookingTime, &difficulty, &equipment, &servings, &tips, &r.Rating, &r.RatingCount); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		r.TitleES = titleES.String
		r.Tips = tips.String
		r.CookingTime = int(cookingTime.Int64)
		r.Difficulty = difficulty.String
		r.Servings = int(servings.Int64)

		if err := parseRecipeColumns(&r, ingredients, steps, nutrition.String, equipment.String); err != nil {
			common.LogWarn("略過無效的食譜資料",
				zap.Int64("recipe_id", r.ID),
				zap.Error(err),
			)
			continue
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

// parseRecipeColumns 解析 JSON 欄位，任一欄位壞掉即視為該列無效
func parseRecipeColumns(r *common.Recipe, ingredients, steps, nutrition, equipment string) error {
	if err := common.ParseJSON(ingredients, &r.Ingredients); err != nil {
		return fmt.Errorf("ingredients: %w", err)
	}
	if err := common.ParseJSON(steps, &r.Steps); err != nil {
		return fmt.Errorf("steps: %w", err)
	}
	if nutrition != "" {
		if err := common.ParseJSON(nutrition, &r.Nutrition); err != nil {
			return fmt.Errorf("nutrition: %w", err)
		}
	}
	if equipment != "" {
		if err := common.ParseJSON(equipment, &r.Equipment); err != nil {
			return fmt.Errorf("equipment: %w", err)
		}
	}
	return nil
}

// ListFlavorPairs 回傳所有風味搭配
func (s *Store) ListFlavorPairs(ctx context.Context) (common.FlavorPairs, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ingredient, pairs FROM flavor_pairs`)
	if err != nil {
		common.LogError("查詢風味搭配失敗", zap.Error(err))
		return nil, fmt.Errorf("list flavor pairs: %w", err)
	}
	defer rows.Close()

	pairs := make(common.FlavorPairs)
	for rows.Next() {
		var ingredient, raw string
		if err := rows.Scan(&ingredient, &raw); err != nil {
			return nil, fmt.Errorf("scan flavor pair: %w", err)
		}
		var list []string
		if err := common.ParseJSON(raw, &list); err != nil {
			common.LogWarn("略過無效的風味搭配資料",
				zap.String("ingredient", ingredient),
				zap.Error(err),
			)
			continue
		}
		pairs[ingredient] = list
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flavor pairs: %w", err)
	}
	return pairs, nil
}

// RecordRating 更新食譜評分並選擇性地寫入評論
// 評分更新與評論寫入在同一交易內，兩者同進退；
// 讀取-重算-寫回在交易內完成，並發評分不會丟失更新
func (s *Store) RecordRating(ctx context.Context, recipeID int64, rating int, comment string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rating tx: %w", err)
	}
	defer tx.Rollback()

	var (
		current float64
		count   int
	)
	err = tx.QueryRowContext(ctx, `SELECT rating, rating_count FROM recipes WHERE id = ?`, recipeID).Scan(&current, &count)
	if err == sql.ErrNoRows {
		return common.NewNotFoundError(fmt.Sprintf("recipe with id %d not found", recipeID))
	}
	if err != nil {
		common.LogError("讀取食譜評分失敗",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err),
		)
		return fmt.Errorf("load rating: %w", err)
	}

	// 精確的移動平均：最終平均值等於所有評分的真實平均
	newCount := count + 1
	newRating := (current*float64(count) + float64(rating)) / float64(newCount)

	if _, err := tx.ExecContext(ctx, `UPDATE recipes SET rating = ?, rating_count = ? WHERE id = ?`,
		newRating, newCount, recipeID); err != nil {
		common.LogError("更新食譜評分失敗",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err),
		)
		return fmt.Errorf("update rating: %w", err)
	}

	// 空評論不入庫
	if comment != "" {
		if _, err := tx.ExecContext(ctx, `INSERT INTO recipe_comments (recipe_id, comment) VALUES (?, ?)`,
			recipeID, comment); err != nil {
			common.LogError("寫入評論失敗",
				zap.Int64("recipe_id", recipeID),
				zap.Error(err),
			)
			return fmt.Errorf("insert comment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rating tx: %w", err)
	}

	common.LogInfo("食譜評分已更新",
		zap.Int64("recipe_id", recipeID),
		zap.Float64("new_average", newRating),
		zap.Int("new_count", newCount),
	)
	return nil
}

// ListComments 回傳某食譜的所有評論，最舊的在前
// 未知的 recipe_id 回傳空列表，不視為錯誤
func (s *Store) ListComments(ctx context.Context, recipeID int64) ([]common.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recipe_id, comment, created_at FROM recipe_comments WHERE recipe_id = ? ORDER BY id`, recipeID)
	if err != nil {
		common.LogError("查詢評論失敗",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []common.Comment{}
	for rows.Next() {
		var (
			c       common.Comment
			created time.Time
		)
		if err := rows.Scan(&c.ID, &c.RecipeID, &c.Comment, &created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.CreatedAt = created
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// Ping 檢查資料庫連線是否可用
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close 關閉資料庫連線
func (s *Store) Close() error {
	return s.db.Close()
}
