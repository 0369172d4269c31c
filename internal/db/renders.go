package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveRender stores a render attempt. Errors may be nil.
func (db *DB) SaveRender(ctx context.Context, run *RenderRun, errs any) error {
	var errJSON []byte
	if errs != nil {
		var err error
		errJSON, err = json.Marshal(errs)
		if err != nil {
			return fmt.Errorf("failed to marshal render errors: %w", err)
		}
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO render_runs (id, status, font_profile, density_preset, page_count, error_count, errors, pdf)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		run.ID, run.Status, run.FontProfile, run.DensityPreset, run.PageCount, run.ErrorCount, errJSON, run.PDF,
	).Scan(&run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save render %s: %w", run.ID, err)
	}
	run.Errors = errJSON
	return nil
}

// GetRender retrieves render metadata by ID. Returns nil when not found.
func (db *DB) GetRender(ctx context.Context, id uuid.UUID) (*RenderRun, error) {
	var run RenderRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, status, font_profile, density_preset, page_count, error_count, errors, created_at
		 FROM render_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.Status, &run.FontProfile, &run.DensityPreset, &run.PageCount, &run.ErrorCount, &run.Errors, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get render %s: %w", id, err)
	}
	return &run, nil
}

// GetRenderPDF retrieves the stored PDF bytes. Returns nil when not found.
func (db *DB) GetRenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var pdf []byte
	err := db.pool.QueryRow(ctx, `SELECT pdf FROM render_runs WHERE id = $1`, id).Scan(&pdf)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get render pdf %s: %w", id, err)
	}
	return pdf, nil
}

// ListRenders returns the most recent renders, newest first
func (db *DB) ListRenders(ctx context.Context, limit int) ([]RenderRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, status, font_profile, density_preset, page_count, error_count, errors, created_at
		 FROM render_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var runs []RenderRun
	for rows.Next() {
		var run RenderRun
		if err := rows.Scan(&run.ID, &run.Status, &run.FontProfile, &run.DensityPreset, &run.PageCount, &run.ErrorCount, &run.Errors, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate renders: %w", err)
	}
	return runs, nil
}
