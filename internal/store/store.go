package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	StatusInProgress = "in progress"
	StatusSuccess    = "success"
	StatusPartial    = "partial"
	StatusFailed     = "failed"
)

// Run is one scheduling run kept in the schedule table. Data holds the
// exported plan CSV once the run finishes.
type Run struct {
	ID        string    `db:"id"`
	Status    string    `db:"status"`
	Report    string    `db:"report"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

// ScheduleRepository provides persistence for scheduling runs.
type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Open connects to the sqlite database at path and ensures the schema.
func Open(path string) (*ScheduleRepository, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open schedule db: %w", err)
	}
	repo := NewScheduleRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *ScheduleRepository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schedule (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		report TEXT NOT NULL DEFAULT '',
		data TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("init schedule table: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Close() error {
	return r.db.Close()
}

// Create registers a new run as in progress.
func (r *ScheduleRepository) Create(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO schedule (id, status, report, data, created_at) VALUES (?, ?, '', '', ?)",
		id, StatusInProgress, time.Now().UTC())
	return err
}

// SetResult stores the outcome of a finished run.
func (r *ScheduleRepository) SetResult(ctx context.Context, id, status, report, data string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE schedule SET status = ?, report = ?, data = ? WHERE id = ?",
		status, report, data, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkFailed records a failed run with its error report.
func (r *ScheduleRepository) MarkFailed(ctx context.Context, id, report string) error {
	return r.SetResult(ctx, id, StatusFailed, report, "")
}

func (r *ScheduleRepository) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.GetContext(ctx, &run,
		"SELECT id, status, report, data, created_at FROM schedule WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns run metadata, newest first. Data is omitted.
func (r *ScheduleRepository) List(ctx context.Context) ([]Run, error) {
	runs := []Run{}
	err := r.db.SelectContext(ctx, &runs,
		"SELECT id, status, report, '' AS data, created_at FROM schedule ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM schedule WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
