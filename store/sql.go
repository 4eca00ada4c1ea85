// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jharlow/conveyor/models"
)

// SQL implements Store on database/sql. Queries use ordinal $n placeholders
// in ascending order, which both lib/pq and modernc sqlite accept, so one
// implementation serves both backends.
type SQL struct {
	db *sql.DB
}

var _ Store = (*SQL)(nil)

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Find(filter Filter) ([]models.Resource, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Name != "" {
		rows, err = s.db.Query(`SELECT id, name FROM resource WHERE name = $1 ORDER BY id`, filter.Name)
	} else {
		rows, err = s.db.Query(`SELECT id, name FROM resource ORDER BY id`)
	}
	if err != nil {
		return nil, fmt.Errorf("find resources: %w", err)
	}
	defer rows.Close()

	out := []models.Resource{}
	for rows.Next() {
		var r models.Resource
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return out, nil
}

func (s *SQL) FindByID(id int64) (models.Resource, error) {
	var r models.Resource
	err := s.db.QueryRow(`SELECT id, name FROM resource WHERE id = $1`, id).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, fmt.Errorf("find resource %d: %w", id, err)
	}
	return r, nil
}

func (s *SQL) Add(req models.CreateResourceRequest) (models.Resource, error) {
	var id int64
	err := s.db.QueryRow(`INSERT INTO resource (name) VALUES ($1) RETURNING id`, req.Name).Scan(&id)
	if err != nil {
		return models.Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	return models.Resource{ID: id, Name: req.Name}, nil
}

func (s *SQL) Update(id int64, req models.UpdateResourceRequest) (models.Resource, error) {
	var r models.Resource
	err := s.db.QueryRow(
		`UPDATE resource SET name = $1 WHERE id = $2 RETURNING id, name`,
		req.Name, id,
	).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, fmt.Errorf("update resource %d: %w", id, err)
	}
	return r, nil
}

func (s *SQL) Remove(id int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM resource WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete resource %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete resource %d: rows affected: %w", id, err)
	}
	return n, nil
}

func (s *SQL) FindChildren(parentID int64) ([]models.Child, error) {
	rows, err := s.db.Query(`SELECT id, resource_id, name FROM child WHERE resource_id = $1 ORDER BY id`, parentID)
	if err != nil {
		return nil, fmt.Errorf("find children of %d: %w", parentID, err)
	}
	defer rows.Close()

	out := []models.Child{}
	for rows.Next() {
		var c models.Child
		if err := rows.Scan(&c.ID, &c.ResourceID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate children: %w", err)
	}
	return out, nil
}

func (s *SQL) AddChild(parentID int64, req models.CreateChildRequest) (models.Child, error) {
	var id int64
	err := s.db.QueryRow(
		`INSERT INTO child (resource_id, name) VALUES ($1, $2) RETURNING id`,
		parentID, req.Name,
	).Scan(&id)
	if err != nil {
		return models.Child{}, fmt.Errorf("insert child of %d: %w", parentID, err)
	}
	return models.Child{ID: id, ResourceID: parentID, Name: req.Name}, nil
}
