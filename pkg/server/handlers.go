package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/buildinfo"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/render"
)

// =============================================================================
// Requests
// =============================================================================

// graphRequest is the part common to every POST body.
type graphRequest struct {
	Graph    graph.Graph `json:"graph"`
	Disabled []string    `json:"disabled" validate:"omitempty,max=10000,dive,required,max=256"`
	Strict   bool        `json:"strict"`
	Refresh  bool        `json:"refresh"`
}

func (g graphRequest) options() pipeline.Options {
	return pipeline.Options{Disabled: g.Disabled, Strict: g.Strict, Refresh: g.Refresh}
}

type layoutRequest struct {
	graphRequest
	Width            float64 `json:"width" validate:"omitempty,gt=0,lte=100000"`
	Height           float64 `json:"height" validate:"omitempty,gt=0,lte=100000"`
	ForceIterations  int     `json:"force_iterations" validate:"omitempty,min=1,max=10000"`
	AnnealIterations int     `json:"anneal_iterations" validate:"omitempty,min=1,max=100000"`
	Seed             uint64  `json:"seed"`
}

type pathsRequest struct {
	graphRequest
	From     string   `json:"from" validate:"required,max=256"`
	To       string   `json:"to" validate:"required,max=256"`
	Mode     string   `json:"mode" validate:"omitempty,oneof=shortest all alternatives"`
	MaxPaths int      `json:"max_paths" validate:"omitempty,min=1,max=1000"`
	Avoid    []string `json:"avoid" validate:"omitempty,max=10000,dive,required,max=256"`
}

type renderRequest struct {
	graphRequest
	Format   string `json:"format" validate:"omitempty,oneof=svg png dot"`
	Tree     bool   `json:"tree"`
	Pinned   bool   `json:"pinned"`
	Detailed bool   `json:"detailed"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if !s.decode(w, r, &req) {
		return
	}
	rep, err := s.runner.Analyze(r.Context(), req.Graph, req.options())
	s.respond(w, rep, err)
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if !s.decode(w, r, &req) {
		return
	}
	rep, err := s.runner.Decompose(r.Context(), req.Graph, req.options())
	s.respond(w, rep, err)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := req.options()
	opts.Width, opts.Height = req.Width, req.Height
	opts.ForceIterations, opts.AnnealIterations = req.ForceIterations, req.AnnealIterations
	opts.Seed = req.Seed
	rep, err := s.runner.Layout(r.Context(), req.Graph, opts)
	s.respond(w, rep, err)
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	var req pathsRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := req.options()
	opts.Mode = pipeline.PathMode(req.Mode)
	opts.MaxPaths = req.MaxPaths
	opts.Avoid = req.Avoid
	rep, err := s.runner.Paths(r.Context(), req.Graph, req.From, req.To, opts)
	s.respond(w, rep, err)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if !s.decode(w, r, &req) {
		return
	}
	rep, err := s.runner.Stats(r.Context(), req.Graph, req.options())
	s.respond(w, rep, err)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := req.options()
	opts.Format = render.Format(req.Format)
	opts.Tree, opts.Pinned, opts.Detailed = req.Tree, req.Pinned, req.Detailed
	art, err := s.runner.Render(r.Context(), req.Graph, opts)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", art.ContentType())
	w.Header().Set("X-Run-ID", uuid.NewString())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

// =============================================================================
// Helpers
// =============================================================================

// decode reads and validates a JSON body, answering the request itself on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, errs.New(errs.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		s.fail(w, errs.Wrap(errs.ErrCodeInvalidInput, err, "malformed JSON body"))
		return false
	}
	if err := s.check(dst); err != nil {
		s.fail(w, err)
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	if errs.GetCode(err) == "" {
		s.logger.Error("request failed", "err", err)
	}
	writeError(w, err)
}
