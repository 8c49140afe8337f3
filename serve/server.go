// Package serve exposes the document renderers over HTTP together with a
// download endpoint for generated files. Render failures are reported as
// structured results, not transport errors: a syntactically valid request
// always gets a 200 with success true or false.
package serve

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/docpress/core/output"
	"github.com/gaurav-prasanna/docpress/core/render"
	"github.com/gaurav-prasanna/docpress/upload"
)

// Config wires the server's collaborators. Store is required; Uploader is
// optional and, when set, mirrors generated files to the public host so
// results carry a shareable link.
type Config struct {
	Addr     string
	BaseURL  string
	Store    *output.Store
	Uploader *upload.Client
}

// Server handles render and file-serving requests.
type Server struct {
	cfg Config
	mux *http.ServeMux
}

// New creates a Server with its routes registered.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /render/pdf", s.handleRenderPDF)
	s.mux.HandleFunc("POST /render/docx", s.handleRenderDocx)
	s.mux.HandleFunc("GET /files", s.handleList)
	s.mux.HandleFunc("GET /files/{filename}", s.handleFile)
	return s
}

// Handler returns the route multiplexer, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving requests on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Addr, s.mux)
}

// renderRequest is the body for both render endpoints. Theme applies to PDF
// only and unknown values fall back to the default theme.
type renderRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	Theme    string `json:"theme,omitempty"`
}

// renderResult mirrors what tool callers expect: either a stored file
// description or an error string, never both.
type renderResult struct {
	Success     bool   `json:"success"`
	ID          string `json:"id,omitempty"`
	Filename    string `json:"filename,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	data, err := render.ToPDF(req.Title, req.Markdown, req.Theme)
	if err != nil {
		writeJSON(w, http.StatusOK, renderResult{Success: false, Error: fmt.Sprintf("PDF generation failed: %v", err)})
		return
	}
	s.finishRender(w, r, data, ".pdf", "application/pdf")
}

func (s *Server) handleRenderDocx(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	data, err := render.ToDocx(req.Title, req.Markdown)
	if err != nil {
		writeJSON(w, http.StatusOK, renderResult{Success: false, Error: fmt.Sprintf("DOCX generation failed: %v", err)})
		return
	}
	s.finishRender(w, r, data, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
}

// finishRender stores the rendered bytes and builds the caller-facing
// result. The download link prefers the public host when an uploader is
// configured and reachable, falling back to the local files endpoint.
func (s *Server) finishRender(w http.ResponseWriter, r *http.Request, data []byte, ext, contentType string) {
	entry, err := s.cfg.Store.Save(data, ext)
	if err != nil {
		writeJSON(w, http.StatusOK, renderResult{Success: false, Error: fmt.Sprintf("storing document: %v", err)})
		return
	}

	downloadURL := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/files/" + entry.Filename
	if s.cfg.Uploader != nil {
		publicURL, err := s.cfg.Uploader.Upload(r.Context(), entry.Filename, data, contentType)
		if err != nil {
			log.Printf("upload of %s failed, serving local link: %v", entry.Filename, err)
		} else {
			downloadURL = publicURL
		}
	}

	log.Printf("rendered %s (%d bytes)", entry.Filename, entry.SizeBytes)
	writeJSON(w, http.StatusOK, renderResult{
		Success:     true,
		ID:          entry.ID,
		Filename:    entry.Filename,
		SizeBytes:   entry.SizeBytes,
		DownloadURL: downloadURL,
	})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	entries, err := s.cfg.Store.List()
	if err != nil {
		httpError(w, http.StatusInternalServerError, "listing files")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": entries})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	path, err := s.cfg.Store.Path(filename)
	if err != nil {
		httpError(w, http.StatusNotFound, "file not found")
		return
	}
	if _, err := os.Stat(path); err != nil {
		httpError(w, http.StatusNotFound, "file not found")
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	http.ServeFile(w, r, path)
}

func contentTypeFor(filename string) string {
	switch filepath.Ext(filename) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
