// Package migrate applies the embedded SQL migrations and records them in
// schema_migrations.
package migrate

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	upSuffix    = ".up.sql"
	dropAllFile = "000_drop_all.sql"
)

// DB is the subset of *pgxpool.Pool the runner needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Runner applies migrations read from fsys.
type Runner struct {
	db   DB
	fsys fs.FS
	log  *zap.SugaredLogger
}

// New returns a Runner. log may be nil.
func New(db DB, fsys fs.FS, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{db: db, fsys: fsys, log: log}
}

// UpFiles returns the .up.sql file names in fsys, sorted.
func UpFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), upSuffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *Runner) ensureSchemaMigrations(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

// Up applies every migration not yet recorded and returns how many ran.
// It stops at the first failing file.
func (r *Runner) Up(ctx context.Context) (int, error) {
	if err := r.ensureSchemaMigrations(ctx); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	files, err := UpFiles(r.fsys)
	if err != nil {
		return 0, err
	}

	applied := 0
	for i, filename := range files {
		name := strings.TrimSuffix(filename, upSuffix)

		var exists bool
		if err := r.db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", name, err)
		}
		if exists {
			continue
		}

		sql, err := fs.ReadFile(r.fsys, filename)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.db.Exec(ctx, string(sql)); err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}
		if _, err := r.db.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return applied, fmt.Errorf("record migration %s: %w", name, err)
		}
		applied++
		r.log.Infow("migration completed", "number", i+1, "migration", name)
	}

	if applied == 0 {
		r.log.Info("all migrations already applied")
	} else {
		r.log.Infow("migrations completed", "count", applied)
	}
	return applied, nil
}

// DropAll runs 000_drop_all.sql.
func (r *Runner) DropAll(ctx context.Context) error {
	r.log.Info("dropping all tables")
	sql, err := fs.ReadFile(r.fsys, dropAllFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", dropAllFile, err)
	}
	if _, err := r.db.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	r.log.Info("all tables dropped")
	return nil
}

// Fresh drops every table and then applies all migrations in order.
func (r *Runner) Fresh(ctx context.Context) (int, error) {
	if err := r.DropAll(ctx); err != nil {
		return 0, err
	}
	return r.Up(ctx)
}
