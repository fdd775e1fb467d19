// Package store records analysis reports in a SQLite database, so that
// runs taken at different times or on different machines can be compared.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/op/go-logging"
	"github.com/sugawarayuuta/sonnet"
)

var log = logging.MustGetLogger("store")

var ErrRunNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	payload    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_kind ON runs (kind, created_at);
`

// Run is a stored report, payload still encoded.
type Run struct {
	ID        int64
	Kind      string
	CreatedAt time.Time
	Payload   []byte
}

// Decodes the payload into out.
func (r Run) Decode(out any) error {
	return sonnet.Unmarshal(r.Payload, out)
}

type Store struct {
	db *sql.DB

	now func() time.Time
}

// Opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debugf("opened report store %s", path)

	return &Store{db: db, now: time.Now}, nil
}

// Encodes the report as JSON and stores it under kind.
// Returns the id of the new run.
func (s *Store) Save(ctx context.Context, kind string, report any) (int64, error) {
	payload, err := sonnet.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("encode %s report: %w", kind, err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (kind, created_at, payload) VALUES (?, ?, ?)`,
		kind, s.now().UnixNano(), string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("save %s report: %w", kind, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	log.Infof("saved %s report as run %d", kind, id)

	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	var (
		r       Run
		created int64
		payload string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, created_at, payload FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Kind, &created, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	r.CreatedAt = time.Unix(0, created)
	r.Payload = []byte(payload)

	return r, nil
}

// Decodes the report of run id into out.
func (s *Store) Load(ctx context.Context, id int64, out any) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.Decode(out); err != nil {
		return fmt.Errorf("decode run %d: %w", id, err)
	}

	return nil
}

// Lists the runs of the given kind, newest first.
// An empty kind lists every run.
func (s *Store) List(ctx context.Context, kind string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, created_at, payload FROM runs
		 WHERE ? = '' OR kind = ?
		 ORDER BY created_at DESC, id DESC`,
		kind, kind,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created int64
			payload string
		)

		if err := rows.Scan(&r.ID, &r.Kind, &created, &payload); err != nil {
			return nil, err
		}

		r.CreatedAt = time.Unix(0, created)
		r.Payload = []byte(payload)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
