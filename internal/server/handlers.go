package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-pdf/internal/db"
	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/validation"
)

// RenderOptions are the query parameters accepted by POST /render
type RenderOptions struct {
	FontProfile   string   `validate:"omitempty,oneof=sans serif mono"`
	DensityPreset string   `validate:"omitempty,oneof=normal compact ultra-compact"`
	SectionOrder  []string `validate:"max=50,dive,oneof=contact summary experience education skills projects experienceProjects"`
}

// ValidateResponse is the body of POST /validate
type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Errors []validation.Error `json:"errors"`
}

// StylesResponse is the body of GET /styles
type StylesResponse struct {
	Profiles       []string `json:"profiles"`
	Densities      []string `json:"densities"`
	DefaultProfile string   `json:"default_profile"`
	DefaultDensity string   `json:"default_density"`
}

const saveTimeout = 5 * time.Second

// readBody reads at most one byte past the raw payload bound. An oversized
// body comes back truncated to that length, which the validator rejects
// with SIZE_EXCEEDED before decoding.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, int64(s.limits.MaxRawBytes())+1)
	data, err := io.ReadAll(body)
	var tooLarge *http.MaxBytesError
	if err != nil && !errors.As(err, &tooLarge) {
		return nil, err
	}
	return data, nil
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result := validation.ValidateBytes(data, s.limits)
	errs := result.Errors
	if errs == nil {
		errs = []validation.Error{}
	}
	s.jsonResponse(w, http.StatusOK, ValidateResponse{Valid: result.IsValid, Errors: errs})
}

func parseRenderOptions(r *http.Request) RenderOptions {
	q := r.URL.Query()
	opts := RenderOptions{
		FontProfile:   q.Get("font"),
		DensityPreset: q.Get("density"),
	}
	if order := q.Get("order"); order != "" {
		for _, key := range strings.Split(order, ",") {
			if key = strings.TrimSpace(key); key != "" {
				opts.SectionOrder = append(opts.SectionOrder, key)
			}
		}
	}
	return opts
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts := parseRenderOptions(r)
	if err := s.validator.Struct(opts); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid render options: %v", err))
		return
	}

	data, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	res, err := pipeline.Process(data, pipeline.Options{
		FontProfile:   opts.FontProfile,
		DensityPreset: opts.DensityPreset,
		SectionOrder:  opts.SectionOrder,
		Limits:        s.limits,
		Registry:      s.registry,
	})
	if err != nil {
		s.renderFailed(w, r, res, opts, err)
		return
	}

	out := res.Output
	log.Printf("[render] %s: %d page(s) with %s/%s", res.RunID, out.PageCount, res.Style.Profile, res.Style.Density)
	if out.Overflows() {
		log.Printf("[render] %s: warning: resume overflows one page", res.RunID)
	}
	s.saveRun(r.Context(), &db.RenderRun{
		ID:            res.RunID,
		Status:        db.StatusRendered,
		FontProfile:   string(res.Style.Profile),
		DensityPreset: string(res.Style.Density),
		PageCount:     out.PageCount,
		PDF:           out.Bytes,
	}, nil)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="resume-%s.pdf"`, res.RunID))
	w.Header().Set("X-Page-Count", strconv.Itoa(out.PageCount))
	w.Header().Set("X-Render-ID", res.RunID.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Bytes); err != nil {
		log.Printf("[render] %s: failed to write response: %v", res.RunID, err)
	}
}

func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, res *pipeline.Result, opts RenderOptions, err error) {
	status := HTTPStatus(err)
	run := &db.RenderRun{
		ID:            res.RunID,
		Status:        db.StatusFailed,
		FontProfile:   opts.FontProfile,
		DensityPreset: opts.DensityPreset,
	}

	switch {
	case errors.Is(err, pipeline.ErrInvalidResume):
		errs := res.Validation.Errors
		log.Printf("[render] %s: rejected with %d validation error(s)", res.RunID, len(errs))
		run.Status = db.StatusInvalid
		run.ErrorCount = len(errs)
		s.saveRun(r.Context(), run, errs)
		s.jsonResponse(w, status, map[string]any{
			"error":  "resume failed validation",
			"errors": errs,
		})
	case status == http.StatusBadRequest:
		log.Printf("[render] %s: bad request: %v", res.RunID, err)
		s.errorResponse(w, status, err.Error())
	default:
		log.Printf("[render] %s: failed: %v", res.RunID, err)
		s.saveRun(r.Context(), run, nil)
		s.errorResponse(w, http.StatusInternalServerError, "internal error while rendering")
	}
}

// saveRun records the run when history is enabled. Storage failures are
// logged and never fail the request.
func (s *Server) saveRun(ctx context.Context, run *db.RenderRun, errs any) {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := s.store.SaveRender(ctx, run, errs); err != nil {
		log.Printf("[render] %s: failed to save history: %v", run.ID, err)
	}
}

func (s *Server) renderID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

func (s *Server) handleListRenders(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	runs, err := s.store.ListRenders(r.Context(), limit)
	if err != nil {
		log.Printf("[renders] list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list renders")
		return
	}
	if runs == nil {
		runs = []db.RenderRun{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"renders": runs})
}

func (s *Server) handleGetRender(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}
	id, err := s.renderID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	run, err := s.store.GetRender(r.Context(), id)
	if err != nil {
		log.Printf("[renders] get %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load render")
		return
	}
	if run == nil {
		err := &ErrNotFound{Resource: "render", ID: id.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

func (s *Server) handleGetRenderPDF(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}
	id, err := s.renderID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	pdf, err := s.store.GetRenderPDF(r.Context(), id)
	if err != nil {
		log.Printf("[renders] get pdf %s failed: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load render")
		return
	}
	if len(pdf) == 0 {
		err := &ErrNotFound{Resource: "render pdf", ID: id.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, StylesResponse{
		Profiles:       s.registry.Profiles(),
		Densities:      s.registry.Densities(),
		DefaultProfile: string(rendering.DefaultProfile),
		DefaultDensity: string(rendering.DefaultDensity),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
