package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists cycle outcomes to a SQLite database.
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

	// WAL mode for better concurrent read performance (inspection tools
	// read while the bot writes).
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
		`CREATE TABLE IF NOT EXISTS cycle_snapshots (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			mode       TEXT,
			close      REAL,
			rsi        TEXT,
			macd       TEXT,
			stochastic TEXT,
			bb         TEXT,
			sma20      TEXT,
			ema50      TEXT,
			vwap       TEXT,
			adx        TEXT,
			atr        TEXT,
			obv        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycle_ts ON cycle_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_cycle_symbol ON cycle_snapshots(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := rec.Report
	_, err := r.db.Exec(`INSERT INTO cycle_snapshots
		(timestamp, symbol, mode, close,
		 rsi, macd, stochastic, bb, sma20, ema50, vwap, adx, atr, obv)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, rec.Mode, rec.Close,
		rep.Get("RSI"), rep.Get("MACD"), rep.Get("Stochastic"), rep.Get("BB"),
		rep.Get("SMA20"), rep.Get("EMA50"), rep.Get("VWAP"), rep.Get("ADX"),
		rep.Get("ATR"), rep.Get("OBV"),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
