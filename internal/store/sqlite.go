package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteStore хранит снимок в SQLite. Каждая сущность хранится JSON документом
// вместе с позицией, чтобы сохранить порядок правил (первое активное выигрывает).
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Logger
}

var tables = []string{"rules", "assets", "liabilities", "goals"}

// OpenSQLite открывает (или создаёт) базу и выполняет миграции
func OpenSQLite(path string, log *logrus.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.WithField("path", path).Info("sqlite store opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, t := range tables {
		stmts = append(stmts, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id       TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			body     TEXT NOT NULL
		)`, t))
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save полностью заменяет хранимый снимок
func (s *SQLiteStore) Save(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('salary', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.FormatFloat(snap.Salary, 'f', -1, 64)); err != nil {
		return fmt.Errorf("save salary: %w", err)
	}

	docs := map[string][]document{}
	for _, r := range snap.Rules {
		docs["rules"] = append(docs["rules"], document{id: r.ID, body: r})
	}
	for _, a := range snap.Assets {
		docs["assets"] = append(docs["assets"], document{id: a.ID, body: a})
	}
	for _, l := range snap.Liabilities {
		docs["liabilities"] = append(docs["liabilities"], document{id: l.ID, body: l})
	}
	for _, g := range snap.Goals {
		docs["goals"] = append(docs["goals"], document{id: g.ID, body: g})
	}

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
		for pos, d := range docs[table] {
			body, err := json.Marshal(d.body)
			if err != nil {
				return fmt.Errorf("encode %s %s: %w", table, d.id, err)
			}
			id := d.id
			if id == "" {
				id = table + "-" + strconv.Itoa(pos)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO "+table+" (id, position, body) VALUES (?, ?, ?)",
				id, pos, string(body)); err != nil {
				return fmt.Errorf("insert %s %s: %w", table, id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"assets":      len(snap.Assets),
		"liabilities": len(snap.Liabilities),
		"goals":       len(snap.Goals),
		"rules":       len(snap.Rules),
	}).Debug("snapshot saved")
	return nil
}

type document struct {
	id   string
	body interface{}
}

// Load читает снимок целиком
func (s *SQLiteStore) Load(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{}

	// строка salary пишется при каждом Save, поэтому её отсутствие означает,
	// что снимок ещё ни разу не сохранялся
	saved := true
	var salary string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = 'salary'`).Scan(&salary)
	switch {
	case err == sql.ErrNoRows:
		saved = false
	case err != nil:
		return nil, fmt.Errorf("load salary: %w", err)
	default:
		if snap.Salary, err = strconv.ParseFloat(salary, 64); err != nil {
			return nil, fmt.Errorf("parse salary: %w", err)
		}
	}

	if err := s.loadTable(ctx, "rules", func(b []byte) error { return appendJSON(b, &snap.Rules) }); err != nil {
		return nil, err
	}
	if err := s.loadTable(ctx, "assets", func(b []byte) error { return appendJSON(b, &snap.Assets) }); err != nil {
		return nil, err
	}
	if err := s.loadTable(ctx, "liabilities", func(b []byte) error { return appendJSON(b, &snap.Liabilities) }); err != nil {
		return nil, err
	}
	if err := s.loadTable(ctx, "goals", func(b []byte) error { return appendJSON(b, &snap.Goals) }); err != nil {
		return nil, err
	}

	if !saved && len(snap.Rules) == 0 {
		snap.Rules = rules.DefaultRules()
	}
	if snap.Rules == nil {
		snap.Rules = []models.GlobalRule{}
	}
	return snap, nil
}

func (s *SQLiteStore) loadTable(ctx context.Context, table string, fn func([]byte) error) error {
	rows, err := s.db.QueryContext(ctx, "SELECT id, body FROM "+table+" ORDER BY position")
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if err := fn([]byte(body)); err != nil {
			return fmt.Errorf("decode %s %s: %w", table, id, err)
		}
	}
	return rows.Err()
}

func appendJSON[T any](body []byte, dst *[]T) error {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// Close закрывает базу
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
