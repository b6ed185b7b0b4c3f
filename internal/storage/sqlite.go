// Package storage 提供基于 SQLite 的成绩持久化
// 使用纯 Go 的 modernc.org/sqlite 驱动，无 CGO 依赖
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动
)

// Store 管理成绩数据库连接
type Store struct {
	db *sql.DB
}

// RunRecord 一局游戏的完整记录
type RunRecord struct {
	RunID        string  // 本局唯一ID（UUID）
	LevelID      string  // 关卡ID
	Score        int     // 最终得分
	PercentMowed float64 // 结束时的割草率（0~100）
	Duration     float64 // 本局用时（秒）
	Completed    bool    // 是否达成目标
	Players      int     // 参与玩家数（1 或 2）
}

// ScoreEntry 排行榜上的单条成绩
type ScoreEntry struct {
	RunID     string
	LevelID   string
	Score     int
	Percent   float64
	Duration  float64
	Completed bool
	CreatedAt time.Time
}

// Open 创建或打开指定路径的成绩数据库
// 自动创建父目录并执行建表迁移；路径支持 "~" 前缀
func Open(dbPath string) (*Store, error) {
	// 展开 ~ 为用户主目录
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// 创建父目录
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate 创建数据库表结构（若不存在）
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			percent_mowed REAL NOT NULL,
			duration_secs REAL NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			players INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun 写入一局游戏记录
func (s *Store) RecordRun(rec RunRecord) error {
	completed := 0
	if rec.Completed {
		completed = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, level_id, score, percent_mowed, duration_secs, completed, players)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.LevelID, rec.Score, rec.PercentMowed, rec.Duration, completed, rec.Players,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// TopScores 返回指定关卡得分最高的前 limit 条记录
// levelID 为空时跨全部关卡查询
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	query := `SELECT run_id, level_id, score, percent_mowed, duration_secs, completed, created_at
		FROM runs`
	args := []interface{}{}
	if levelID != "" {
		query += ` WHERE level_id = ?`
		args = append(args, levelID)
	}
	query += ` ORDER BY score DESC, duration_secs ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var completed int
		if err := rows.Scan(&e.RunID, &e.LevelID, &e.Score, &e.Percent, &e.Duration, &completed, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score row: %w", err)
		}
		e.Completed = completed != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore 返回指定关卡的历史最高分，无记录时返回 0
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM runs WHERE level_id = ?`, levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RunCount 返回指定关卡的总游玩局数
func (s *Store) RunCount(levelID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM runs WHERE level_id = ?`, levelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}
