package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists refresh history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refresh_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			cycle           INTEGER NOT NULL,
			snapshot_id     TEXT,
			source          TEXT,
			last_historical REAL,
			last_predicted  REAL,
			trend           TEXT,
			volatility      REAL,
			volatility_band TEXT,
			recommendation  TEXT,
			confidence      INTEGER,
			mape            REAL,
			rmse            REAL,
			r2_score        REAL,
			data_points     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_ts ON refresh_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS recommendation_changes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			snapshot_id TEXT,
			prev_action TEXT,
			new_action  TEXT,
			trend       TEXT,
			confidence  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reco_ts ON recommendation_changes(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRefresh(rec *RefreshRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO refresh_snapshots
		(timestamp, cycle, snapshot_id, source, last_historical, last_predicted,
		 trend, volatility, volatility_band, recommendation, confidence,
		 mape, rmse, r2_score, data_points)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Cycle, rec.SnapshotID, rec.Source,
		rec.LastHistorical, rec.LastPredicted,
		rec.Trend, rec.Volatility, rec.VolatilityBand,
		rec.Recommendation, rec.Confidence,
		rec.MAPE, rec.RMSE, rec.R2Score, rec.DataPoints,
	)
	return err
}

func (r *SQLiteRecorder) RecordRecommendationChange(chg *RecommendationChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO recommendation_changes
		(timestamp, snapshot_id, prev_action, new_action, trend, confidence)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), chg.SnapshotID, chg.From, chg.To, chg.Trend, chg.Confidence,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
