package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/dexconv/internal/core"
	"github.com/JonMunkholm/dexconv/internal/core/tables"
	"github.com/JonMunkholm/dexconv/internal/logging"
	"github.com/go-chi/chi/v5"
)

// SchemaField describes one accepted column.
type SchemaField struct {
	Header    string `json:"header"`
	Attribute string `json:"attribute"`
}

// SchemaResponse is the body of GET /api/schema/{version}.
type SchemaResponse struct {
	Version   string        `json:"version"`
	Mandatory string        `json:"mandatory"`
	Fields    []SchemaField `json:"fields"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string             `json:"status"`
	Conversions core.LimiterStatus `json:"conversions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Conversions: s.limiter.Status()})
}

func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"versions": tables.Versions()})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	reg, err := tables.NewSchema(version, s.aliases)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   err.Error(),
			Message: fmt.Sprintf("Unknown schema version %q.", version),
			Action:  "Use one of: " + strings.Join(tables.Versions(), ", "),
			Code:    "HTTP404",
		})
		return
	}

	resp := SchemaResponse{
		Version:   reg.Name(),
		Mandatory: core.SpeciesHeader,
		Fields:    make([]SchemaField, 0, reg.Len()),
	}
	for _, d := range reg.All() {
		resp.Fields = append(resp.Fields, SchemaField{Header: d.Header, Attribute: d.Attribute})
	}
	writeJSON(w, http.StatusOK, resp)
}

// convertRequest is a parsed POST to /api/convert or /api/preview.
type convertRequest struct {
	conv   *core.Converter
	body   io.ReadCloser
	format core.Format
}

// parseConvertRequest reads the dataset and query parameters shared by the
// convert and preview endpoints. It writes the error response itself and
// returns ok=false on failure.
//
// The dataset is either the raw request body or the "file" part of a
// multipart form. Query parameters:
//
//	standalone=1   extended schema, complete records
//	strict=1       reject duplicate species instead of overwriting
//	export=Name    export name (default from config)
//	format=xlsx    input format; otherwise taken from the uploaded file name
func (s *Server) parseConvertRequest(w http.ResponseWriter, r *http.Request) (*convertRequest, bool) {
	q := r.URL.Query()

	opts := s.defaults
	standalone := queryBool(q.Get("standalone"))
	if queryBool(q.Get("strict")) {
		opts.Duplicates = core.DuplicateReject
	}
	if name := q.Get("export"); name != "" {
		if !core.ValidExportName(name) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "invalid export name",
				Message: fmt.Sprintf("%q is not a valid export name.", name),
				Action:  "Use letters, digits, _ or $, not starting with a digit.",
				Code:    "HTTP400",
			})
			return nil, false
		}
		opts.ExportName = name
	}

	if opts.MaxFileSize > 0 {
		// Leave headroom for multipart framing; the converter enforces the
		// exact limit on the dataset itself.
		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxFileSize+1<<20)
	}

	body, filename, err := readDataset(r)
	if err != nil {
		respondError(w, r, err, 0)
		return nil, false
	}

	format := core.FormatFromPath(filename)
	if f := q.Get("format"); f != "" {
		format = core.Format(strings.ToLower(f))
	}

	conv, err := tables.NewConverter(standalone, s.aliases, opts)
	if err != nil {
		body.Close()
		respondError(w, r, err, http.StatusInternalServerError)
		return nil, false
	}
	return &convertRequest{conv: conv, body: body, format: format}, true
}

// acquire takes a conversion slot, answering 503 when none frees up in time.
func (s *Server) acquire(w http.ResponseWriter, r *http.Request) bool {
	if err := s.limiter.Acquire(r.Context()); err != nil {
		if errors.Is(err, core.ErrTooManyConversions) {
			w.Header().Set("Retry-After", "5")
			respondError(w, r, err, http.StatusServiceUnavailable)
		} else {
			respondError(w, r, err, http.StatusRequestTimeout)
		}
		return false
	}
	return true
}

// handleConvert converts the uploaded dataset and returns the generated module.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseConvertRequest(w, r)
	if !ok {
		return
	}
	defer req.body.Close()

	if !s.acquire(w, r) {
		return
	}
	defer s.limiter.Release()

	ctx := logging.ContextWithRunID(r.Context(), logging.NewRunID())
	res, err := req.conv.Convert(ctx, req.body, req.format)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Output)))
	w.Header().Set("X-Run-Id", res.RunID)
	w.Header().Set("X-Entries", strconv.Itoa(res.Stats.Entries))
	if len(res.Stats.Overwritten) > 0 {
		w.Header().Set("X-Overwritten", strings.Join(res.Stats.Overwritten, ","))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, bytes.NewReader(res.Output)); err != nil {
		logging.FromContext(ctx).Error("write response", "error", err)
	}
}

// handlePreview dry-runs a conversion and reports what it would produce.
// Dataset problems are part of the preview body, so a bad file still
// answers 200.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseConvertRequest(w, r)
	if !ok {
		return
	}
	defer req.body.Close()

	if !s.acquire(w, r) {
		return
	}
	defer s.limiter.Release()

	ctx := logging.ContextWithRunID(r.Context(), logging.NewRunID())
	resp, err := req.conv.Preview(ctx, req.body, req.format)
	if err != nil {
		respondError(w, r, err, 0)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// readDataset returns the request's dataset and, for multipart uploads, the
// uploaded file name.
func readDataset(r *http.Request) (io.ReadCloser, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, "", nil
	}

	// Form parts above 32MB spill to temp files.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, "", fmt.Errorf("file too large or invalid form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("no file provided: %w", err)
	}
	return file, header.Filename, nil
}

func queryBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
