package analytics

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
	"github.com/sirupsen/logrus"

	"linkedin-agent/models"
)

// InitDB opens the analytics database, creating the file and schema if they
// do not exist.
func InitDB(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create analytics directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to analytics database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create analytics tables: %w", err)
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS post_metrics (
			post_id TEXT PRIMARY KEY,
			template TEXT,
			hook TEXT,
			posted_at INTEGER,
			views INTEGER DEFAULT 0,
			likes INTEGER DEFAULT 0,
			comments INTEGER DEFAULT 0,
			shares INTEGER DEFAULT 0,
			score REAL DEFAULT 0,
			updated_at INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS top_hooks (
			hook TEXT PRIMARY KEY,
			score REAL,
			recorded_at INTEGER
		);`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Recorder persists per-post engagement so the dashboard collaborator can
// score hooks against history.
type Recorder struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewRecorder(db *sql.DB, logger *logrus.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// RecordPublish registers a freshly published post before any engagement
// exists for it.
func (r *Recorder) RecordPublish(postID, template, hook string, postedAt time.Time) error {
	query := `INSERT OR IGNORE INTO post_metrics (post_id, template, hook, posted_at, updated_at)
		VALUES (?, ?, ?, ?, ?);`
	if _, err := r.db.Exec(query, postID, template, hook, postedAt.Unix(), postedAt.Unix()); err != nil {
		return fmt.Errorf("failed to record publish for post %s: %w", postID, err)
	}
	return nil
}

// SaveEngagement updates a post's metrics and derived score.
func (r *Recorder) SaveEngagement(postID string, e models.Engagement, score float64, at time.Time) error {
	query := `UPDATE post_metrics
		SET views = ?, likes = ?, comments = ?, shares = ?, score = ?, updated_at = ?
		WHERE post_id = ?;`
	res, err := r.db.Exec(query, e.Views, e.Likes, e.Comments, e.Shares, score, at.Unix(), postID)
	if err != nil {
		return fmt.Errorf("failed to save engagement for post %s: %w", postID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no recorded post with id %s", postID)
	}
	return nil
}

// MarkTopHook remembers a hook that crossed the top-hook threshold, keeping
// the best score seen so far.
func (r *Recorder) MarkTopHook(hook string, score float64, at time.Time) error {
	query := `INSERT INTO top_hooks (hook, score, recorded_at) VALUES (?, ?, ?)
		ON CONFLICT(hook) DO UPDATE SET score = excluded.score, recorded_at = excluded.recorded_at
		WHERE excluded.score > top_hooks.score;`
	if _, err := r.db.Exec(query, hook, score, at.Unix()); err != nil {
		return fmt.Errorf("failed to mark top hook: %w", err)
	}
	return nil
}

// TopHooks returns the best-performing hooks, highest score first.
func (r *Recorder) TopHooks(limit int) ([]models.HookScore, error) {
	rows, err := r.db.Query(`SELECT hook, score FROM top_hooks ORDER BY score DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top hooks: %w", err)
	}
	defer rows.Close()

	var hooks []models.HookScore
	for rows.Next() {
		var h models.HookScore
		if err := rows.Scan(&h.Hook, &h.Score); err != nil {
			return nil, fmt.Errorf("failed to scan top hook: %w", err)
		}
		hooks = append(hooks, h)
	}
	return hooks, rows.Err()
}

// Summary aggregates all recorded posts for the dashboard.
func (r *Recorder) Summary() (models.AnalyticsSummary, error) {
	var s models.AnalyticsSummary

	row := r.db.QueryRow(`SELECT COUNT(*),
		COALESCE(SUM(views), 0), COALESCE(SUM(likes), 0),
		COALESCE(SUM(comments), 0), COALESCE(SUM(shares), 0),
		COALESCE(AVG(score), 0)
		FROM post_metrics;`)
	if err := row.Scan(&s.TotalPosts, &s.TotalViews, &s.TotalLikes, &s.TotalComments, &s.TotalShares, &s.AverageEngagementRate); err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("failed to aggregate post metrics: %w", err)
	}
	if s.TotalPosts == 0 {
		return s, nil
	}

	if err := r.db.QueryRow(`SELECT post_id FROM post_metrics ORDER BY score DESC, posted_at ASC LIMIT 1;`).Scan(&s.BestPerformingPost); err != nil && err != sql.ErrNoRows {
		return models.AnalyticsSummary{}, fmt.Errorf("failed to find best post: %w", err)
	}
	if err := r.db.QueryRow(`SELECT post_id FROM post_metrics ORDER BY score ASC, posted_at ASC LIMIT 1;`).Scan(&s.WorstPerformingPost); err != nil && err != sql.ErrNoRows {
		return models.AnalyticsSummary{}, fmt.Errorf("failed to find worst post: %w", err)
	}
	return s, nil
}
