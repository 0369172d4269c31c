package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-pdf/internal/db"
)

// RenderStore persists render history. *db.DB implements it.
type RenderStore interface {
	SaveRender(ctx context.Context, run *db.RenderRun, errs any) error
	GetRender(ctx context.Context, id uuid.UUID) (*db.RenderRun, error)
	GetRenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	ListRenders(ctx context.Context, limit int) ([]db.RenderRun, error)
}
