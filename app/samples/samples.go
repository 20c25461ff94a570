package samples

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/mahesh-hegde/plotweave/app/common"
)

//go:embed data/*.csv
var sampleFs embed.FS

var descriptions = map[string]string{
	"growth.csv":  "Age, height and weight measurements",
	"weather.csv": "Daily temperatures and rainfall",
}

type Sample struct {
	Name        string
	Description string
}

// SampleStore serves the bundled example datasets from a read-only
// SQLite table, loaded once at startup from the embedded files.
type SampleStore struct {
	db *sql.DB
}

// NewSQLiteDB opens the samples database. With an empty dataDir the
// database lives in memory only.
func NewSQLiteDB(dataDir string) (*sql.DB, error) {
	dbPath := ":memory:"
	if dataDir != "" {
		dbPath = filepath.Join(dataDir, "plotweave.db")
	}
	slog.Info("opening SQLite DB", "dbPath", dbPath)
	db, err := sql.Open(SQLiteDriverName, dbPath)
	if err != nil {
		return nil, err
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewSampleStore(db *sql.DB) *SampleStore {
	return &SampleStore{db: db}
}

// Init creates the samples table and loads every embedded file into it.
func (s *SampleStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS plotweave_samples (
			name TEXT PRIMARY KEY,
			description TEXT,
			content BLOB
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create plotweave_samples table: %w", err)
	}

	entries, err := sampleFs.ReadDir("data")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		content, err := sampleFs.ReadFile("data/" + entry.Name())
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO plotweave_samples (name, description, content) VALUES (?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET description = excluded.description, content = excluded.content
		`, entry.Name(), descriptions[entry.Name()], content)
		if err != nil {
			return fmt.Errorf("failed to load sample %q: %w", entry.Name(), err)
		}
		slog.Debug("loaded sample dataset", "name", entry.Name(), "bytes", len(content))
	}
	return nil
}

func (s *SampleStore) List(ctx context.Context) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, description FROM plotweave_samples ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Sample
	for rows.Next() {
		var sm Sample
		if err := rows.Scan(&sm.Name, &sm.Description); err != nil {
			return nil, err
		}
		result = append(result, sm)
	}
	return result, rows.Err()
}

func (s *SampleStore) Get(ctx context.Context, name string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT content FROM plotweave_samples WHERE name = ?", name).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, common.NewUserVisibleError(http.StatusNotFound,
			fmt.Sprintf("No sample dataset named %q", name))
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}
