// Package api serves the local genome store read-only over HTTP. The
// sequence endpoint mirrors the response shape of the upstream UCSC API,
// so clients can point at either interchangeably.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/genomekit/genomekit/pkg/errors"
	"github.com/genomekit/genomekit/pkg/genome"
)

// Server exposes a genome store over HTTP.
type Server struct {
	store *genome.Store
	log   *charmlog.Logger
}

// NewServer creates a server backed by store. A nil logger discards
// request logs.
func NewServer(store *genome.Store, logger *charmlog.Logger) *Server {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Server{store: store, log: logger}
}

// Handler returns the chi router with all API routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/genomes", func(r chi.Router) {
		r.Get("/", s.listGenomes)
		r.Route("/{assembly}", func(r chi.Router) {
			r.Get("/", s.getGenome)
			r.Get("/chromosomes", s.getChromosomes)
			r.Get("/sequence", s.getSequence)
		})
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// listGenomes returns the assemblies present in the store.
func (s *Server) listGenomes(w http.ResponseWriter, r *http.Request) {
	assemblies, err := s.store.Assemblies()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if assemblies == nil {
		assemblies = []string{}
	}
	s.writeJSON(w, map[string]any{"genomes": assemblies})
}

// getGenome returns one assembly's catalog metadata.
func (s *Server) getGenome(w http.ResponseWriter, r *http.Request) {
	assembly := chi.URLParam(r, "assembly")
	if err := errors.ValidateAssembly(assembly); err != nil {
		s.writeError(w, err)
		return
	}
	info, err := s.store.ReadInfo(assembly)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, info)
}

// getChromosomes returns an assembly's chromosome name to length mapping.
func (s *Server) getChromosomes(w http.ResponseWriter, r *http.Request) {
	assembly := chi.URLParam(r, "assembly")
	if err := errors.ValidateAssembly(assembly); err != nil {
		s.writeError(w, err)
		return
	}
	lengths, err := s.store.ReadChromosomes(assembly)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"chromosomes": lengths})
}

// getSequence returns the nucleotides of [start, end) on a chromosome,
// in the same {"dna": ...} shape as the upstream UCSC endpoint. Omitted
// start/end default to the whole chromosome.
func (s *Server) getSequence(w http.ResponseWriter, r *http.Request) {
	assembly := chi.URLParam(r, "assembly")
	if err := errors.ValidateAssembly(assembly); err != nil {
		s.writeError(w, err)
		return
	}

	chrom := r.URL.Query().Get("chrom")
	if chrom == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing chrom parameter"))
		return
	}
	if err := errors.ValidateChromosome(chrom); err != nil {
		s.writeError(w, err)
		return
	}

	dna, err := s.store.ReadSequence(assembly, chrom)
	if err != nil {
		s.writeError(w, err)
		return
	}

	start, end := 0, len(dna)
	var perr error
	if v := r.URL.Query().Get("start"); v != "" {
		start, perr = strconv.Atoi(v)
		if perr != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid start %q", v))
			return
		}
	}
	if v := r.URL.Query().Get("end"); v != "" {
		end, perr = strconv.Atoi(v)
		if perr != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid end %q", v))
			return
		}
	}
	if start < 0 || end > len(dna) || end <= start {
		s.writeError(w, errors.New(errors.ErrCodeOutOfBounds,
			"range [%d, %d) outside chromosome %s of length %d", start, end, chrom, len(dna)))
		return
	}

	s.writeJSON(w, map[string]string{"dna": dna[start:end]})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps typed error codes onto HTTP statuses: NOT_FOUND family
// to 404, validation and bounds errors to 400, everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeUnknownChromosome:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAssembly,
		errors.ErrCodeInvalidInterval, errors.ErrCodeOutOfBounds:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]errorBody{
		"error": {Code: errors.GetCode(err), Message: errors.UserMessage(err)},
	})
}
