package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/testboard/webapi-backend/internal/storage/postgres"
	"github.com/testboard/webapi-backend/internal/testprojects/domain"
)

// Repo provides persistence operations for test projects. Each operation
// acquires its own connection and releases it on exit.
type Repo struct {
	conn *postgres.Connector
}

func New(conn *postgres.Connector) *Repo {
	return &Repo{conn: conn}
}

// setSearchPath pins the schema; the deployment role has a restricted search_path.
func setSearchPath(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `SET search_path = public, "$user"`)
	return err
}

// List returns all projects ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.TestProject, error) {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := setSearchPath(ctx, db); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT "Id", "Name" FROM "TestProjects" ORDER BY "Id"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TestProject, 0, 16)
	for rows.Next() {
		var p domain.TestProject
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the project with the given id, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id int) (*domain.TestProject, error) {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := setSearchPath(ctx, db); err != nil {
		return nil, err
	}

	var p domain.TestProject
	err = db.QueryRowContext(ctx, `SELECT "Id", "Name" FROM "TestProjects" WHERE "Id" = $1`, id).
		Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project; the store assigns the id.
func (r *Repo) Create(ctx context.Context, name string) (*domain.TestProject, error) {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := setSearchPath(ctx, db); err != nil {
		return nil, err
	}

	p := domain.TestProject{Name: name}
	err = db.QueryRowContext(ctx, `INSERT INTO "TestProjects" ("Name") VALUES ($1) RETURNING "Id"`, name).
		Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

// Update overwrites the project's name, or returns domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, id int, name string) error {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := setSearchPath(ctx, db); err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `UPDATE "TestProjects" SET "Name" = $1 WHERE "Id" = $2`, name, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the project, or returns domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id int) error {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := setSearchPath(ctx, db); err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM "TestProjects" WHERE "Id" = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
