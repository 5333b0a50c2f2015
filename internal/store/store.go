// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"pvdb-cli/internal/store/migrations"
	"pvdb-cli/pkg/pvdb"
)

const pragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

var (
	// ErrPathRequired is returned by Open for an empty path.
	ErrPathRequired = errors.New("storage path is required")
	// ErrNotConfigured is returned by methods of a nil or closed Store.
	ErrNotConfigured = errors.New("storage is not configured")
	// ErrNotFound is returned when no row has the requested identifier.
	ErrNotFound = errors.New("entry not found")
)

type (
	// Clock supplies import timestamps.
	Clock interface {
		Now() time.Time
	}

	// Option configures a Store.
	Option func(*Store)

	// Store persists catalogue records in SQLite.
	Store struct {
		sqlDB *sql.DB
		clock Clock
	}

	// Record is one stored row.
	Record struct {
		ID           uint32
		SongName     string
		SongNameEn   string
		SongFileName string
		BPM          *int32
		Date         *int32
		Charts       int
		Source       string
		ImportedAt   time.Time
		// Payload is the full record as JSON.
		Payload json.RawMessage
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time { return time.Now() }

// WithClock sets the clock used for imported_at and migration timestamps.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	s := &Store{clock: systemClock{}}
	for _, opt := range opts {
		opt(s)
	}

	sqlDB, err := sql.Open("sqlite", filepath.Clean(path)+pragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS, s.clock.Now()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s.sqlDB = sqlDB
	return s, nil
}

// Close closes the SQLite handle. It is safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return ErrNotConfigured
	}
	return nil
}

// PutCatalogue upserts every record of cat in one transaction, tagging the
// rows with source. It returns the number of rows written. Nothing is
// written when any record fails.
func PutCatalogue[T pvdb.Summarizer](ctx context.Context, s *Store, source string, cat *pvdb.Catalogue[T]) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (
	   id, song_name, song_name_en, song_file_name, bpm, date, charts,
	   payload, source, imported_at
	 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	 ON CONFLICT(id) DO UPDATE SET
	   song_name = excluded.song_name,
	   song_name_en = excluded.song_name_en,
	   song_file_name = excluded.song_file_name,
	   bpm = excluded.bpm,
	   date = excluded.date,
	   charts = excluded.charts,
	   payload = excluded.payload,
	   source = excluded.source,
	   imported_at = excluded.imported_at`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	importedAt := toMillis(s.clock.Now())
	n := 0
	for id, rec := range cat.All() {
		payload, err := json.Marshal(rec)
		if err != nil {
			return 0, fmt.Errorf("encode entry %d: %w", id, err)
		}
		sum := rec.Summary()
		if _, err := stmt.ExecContext(ctx,
			int64(id),
			sum.SongName,
			sum.SongNameEn,
			sum.SongFileName,
			nullInt32(sum.BPM),
			nullInt32(sum.Date),
			sum.Charts,
			string(payload),
			source,
			importedAt,
		); err != nil {
			return 0, fmt.Errorf("store entry %d: %w", id, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

// GetEntry returns the row with the given identifier.
func (s *Store) GetEntry(ctx context.Context, id uint32) (Record, error) {
	if err := s.ready(ctx); err != nil {
		return Record{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, song_name, song_name_en, song_file_name, bpm, date, charts,
		        payload, source, imported_at
		   FROM entries
		  WHERE id = ?`,
		int64(id),
	)

	var (
		rec        Record
		rawID      int64
		bpm, date  sql.NullInt32
		payload    string
		importedAt int64
	)
	err := row.Scan(
		&rawID,
		&rec.SongName,
		&rec.SongNameEn,
		&rec.SongFileName,
		&bpm,
		&date,
		&rec.Charts,
		&payload,
		&rec.Source,
		&importedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return Record{}, fmt.Errorf("get entry %d: %w", id, err)
	}

	rec.ID = uint32(rawID)
	rec.BPM = fromNullInt32(bpm)
	rec.Date = fromNullInt32(date)
	rec.Payload = json.RawMessage(payload)
	rec.ImportedAt = fromMillis(importedAt)
	return rec, nil
}

// ListIDs returns every stored identifier in ascending order.
func (s *Store) ListIDs(ctx context.Context) ([]uint32, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	defer rows.Close()

	ids := []uint32{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, uint32(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}

// Payload decodes the JSON payload of rec into a T.
func Payload[T any](rec Record) (T, error) {
	var v T
	if err := json.Unmarshal(rec.Payload, &v); err != nil {
		return v, fmt.Errorf("decode entry %d: %w", rec.ID, err)
	}
	return v, nil
}

func nullInt32(v *int32) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *v, Valid: true}
}

func fromNullInt32(v sql.NullInt32) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}
