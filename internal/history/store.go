package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KaramelBytes/tablecheck-cli/internal/quality"
)

// Entry is one stored analysis run.
type Entry struct {
	ID          string    `json:"id" yaml:"id"`
	Dataset     string    `json:"dataset" yaml:"dataset"`
	AnalyzedAt  time.Time `json:"analyzed_at" yaml:"analyzed_at"`
	Score       int       `json:"score" yaml:"score"`
	Rows        int       `json:"rows" yaml:"rows"`
	Columns     int       `json:"columns" yaml:"columns"`
	Duplicates  int       `json:"duplicates" yaml:"duplicates"`
	MissingPct  float64   `json:"missing_pct" yaml:"missing_pct"`
}

// ScorePoint is one step in a dataset's score evolution.
type ScorePoint struct {
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`
	Score      int       `json:"score" yaml:"score"`
}

// Store persists analysis summaries in a local SQLite database so repeated
// runs over the same dataset can be compared.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS analyses (
			id TEXT PRIMARY KEY,
			dataset TEXT NOT NULL,
			analyzed_at TIMESTAMP NOT NULL,
			score INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			columns INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			missing_pct DOUBLE NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_analyses_dataset ON analyses(dataset, analyzed_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// StoreAnalysis records one report summary. The dataset key is the base name
// of the source file so moving a file between directories keeps its history.
func (s *Store) StoreAnalysis(rep *quality.Report) error {
	dataset := filepath.Base(rep.SourceFile)
	_, err := s.db.Exec(
		`INSERT INTO analyses (id, dataset, analyzed_at, score, rows, columns, duplicates, missing_pct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, dataset, rep.GeneratedAt, rep.QualityScore,
		rep.TotalRows, rep.TotalColumns, rep.Duplicates.Count, rep.MissingValues.Percentage,
	)
	if err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}
	return nil
}

// History returns the most recent entries, newest first. An empty dataset
// returns entries across all datasets.
func (s *Store) History(dataset string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, dataset, analyzed_at, score, rows, columns, duplicates, missing_pct
		FROM analyses`
	args := []any{}
	if dataset != "" {
		query += ` WHERE dataset = ?`
		args = append(args, dataset)
	}
	query += ` ORDER BY analyzed_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Dataset, &e.AnalyzedAt, &e.Score,
			&e.Rows, &e.Columns, &e.Duplicates, &e.MissingPct); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ScoreEvolution returns a dataset's scores in chronological order.
func (s *Store) ScoreEvolution(dataset string) ([]ScorePoint, error) {
	rows, err := s.db.Query(
		`SELECT analyzed_at, score FROM analyses WHERE dataset = ? ORDER BY analyzed_at ASC`,
		dataset,
	)
	if err != nil {
		return nil, fmt.Errorf("query score evolution: %w", err)
	}
	defer rows.Close()

	var points []ScorePoint
	for rows.Next() {
		var p ScorePoint
		if err := rows.Scan(&p.AnalyzedAt, &p.Score); err != nil {
			return nil, fmt.Errorf("scan score point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
