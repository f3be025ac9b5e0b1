// Package store keeps registration records in a SQLite database so that
// several data files can be imported once and queried with filters.
//
// Every import is a batch identified by a UUID. Loading pushes the date and
// label filters down to SQL and returns a registration.Dataset.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/etnz/registration"
	"github.com/etnz/registration/date"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	records INTEGER NOT NULL,
	imported_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS registrations (
	batch_id TEXT NOT NULL REFERENCES batches(id),
	registration_date TEXT NOT NULL,
	vehicle_category TEXT NOT NULL,
	manufacturer TEXT NOT NULL,
	total_vehicles INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS registrations_date ON registrations(registration_date);
`

// Store is a SQLite backed collection of records.
type Store struct {
	db *sql.DB
}

// Batch describes one import.
type Batch struct {
	ID         string
	Source     string
	Records    int
	ImportedAt time.Time
}

// Open opens or creates the database at path and makes sure the tables exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create tables in %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Import validates records and inserts them as a new batch, in a single transaction.
func (s *Store) Import(ctx context.Context, source string, records []registration.Record) (Batch, error) {
	if err := registration.ValidateAll(records); err != nil {
		return Batch{}, err
	}
	batch := Batch{
		ID:         uuid.New().String(),
		Source:     source,
		Records:    len(records),
		ImportedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Batch{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO batches (id, source, records, imported_at) VALUES (?, ?, ?, ?)`,
		batch.ID, batch.Source, batch.Records, batch.ImportedAt); err != nil {
		return Batch{}, fmt.Errorf("could not insert batch: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO registrations (batch_id, registration_date, vehicle_category, manufacturer, total_vehicles) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Batch{}, err
	}
	defer stmt.Close()
	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, batch.ID, r.On.String(), r.Category, r.Manufacturer, r.Count); err != nil {
			return Batch{}, fmt.Errorf("could not insert record %v: %w", r, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Batch{}, err
	}
	log.Printf("imported %d records from %q as batch %s", batch.Records, source, batch.ID)
	return batch, nil
}

// Load returns the records matching f, from all batches. The date range is
// applied by the query, labels by f.Match so they fold case like files do.
func (s *Store) Load(ctx context.Context, f registration.Filter) (registration.Dataset, error) {
	query, args := selectQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return registration.Dataset{}, fmt.Errorf("could not query records: %w", err)
	}
	defer rows.Close()

	var records []registration.Record
	for rows.Next() {
		var (
			on string
			r  registration.Record
		)
		if err := rows.Scan(&on, &r.Category, &r.Manufacturer, &r.Count); err != nil {
			return registration.Dataset{}, err
		}
		if r.On, err = date.Parse(on); err != nil {
			return registration.Dataset{}, fmt.Errorf("%w: %w", registration.ErrInvalidRecord, err)
		}
		if !f.Match(r) {
			continue
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return registration.Dataset{}, err
	}
	return registration.NewDataset(records)
}

// selectQuery builds the query of Load. Dates are stored as ISO strings, so
// they compare like dates. SQLite lower() only folds ASCII, labels are left
// to Filter.Match.
func selectQuery(f registration.Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if !f.From.IsZero() {
		where = append(where, "registration_date >= ?")
		args = append(args, f.From.String())
	}
	if !f.To.IsZero() {
		where = append(where, "registration_date <= ?")
		args = append(args, f.To.String())
	}

	query := "SELECT registration_date, vehicle_category, manufacturer, total_vehicles FROM registrations"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	return query, args
}

// Batches lists the imports, oldest first.
func (s *Store) Batches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, source, records, imported_at FROM batches ORDER BY imported_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.Source, &b.Records, &b.ImportedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// Delete removes a batch and its records.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE batch_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM batches WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unknown batch %q", id)
	}
	return tx.Commit()
}
