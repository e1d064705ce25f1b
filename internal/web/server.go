package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Divyansh-2003/files-chunker/chunker"
	"github.com/Divyansh-2003/files-chunker/session"
)

const sessionCookie = "files_chunker_session"

// maxUploadMemory bounds how much of a multipart body is buffered in RAM
// before spilling to disk.
const maxUploadMemory = 32 << 20

// Server is the HTTP front end. It keeps one workspace per session cookie
// and remembers the last processing result for each so the form page can
// offer the downloads.
type Server struct {
	baseDir          string
	defaultThreshold int64

	mu      sync.Mutex
	results map[string]*chunker.Result
}

// NewServer returns a Server storing session workspaces under baseDir.
// defaultThreshold is used when the form's size field is empty or invalid.
func NewServer(baseDir string, defaultThreshold int64) *Server {
	if defaultThreshold <= 0 {
		defaultThreshold = chunker.DefaultThreshold
	}
	return &Server{
		baseDir:          baseDir,
		defaultThreshold: defaultThreshold,
		results:          make(map[string]*chunker.Result),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/process", s.handleProcess)
	mux.HandleFunc("/download/bundle", s.handleDownloadBundle)
	mux.HandleFunc("/download/chunk", s.handleDownloadChunk)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// workspace resolves the request's session workspace, minting a new session
// cookie when none is present.
func (s *Server) workspace(w http.ResponseWriter, r *http.Request) (*session.Workspace, error) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if ws, err := session.Open(s.baseDir, c.Value); err == nil {
			return ws, nil
		}
		// Bad or stale cookie: fall through and mint a fresh session.
	}
	ws, err := session.New(s.baseDir)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    ws.ID,
		Path:     "/",
		HttpOnly: true,
	})
	return ws, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ws, err := s.workspace(w, r)
	if err != nil {
		http.Error(w, "could not open session workspace", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	res := s.results[ws.ID]
	s.mu.Unlock()

	data := indexData{DefaultSize: chunker.FormatThreshold(s.defaultThreshold)}
	if res != nil {
		data.Processed = true
		data.Rejoinable = res.Rejoinable
		data.Independent = res.Independent
		data.Notices = res.Notices
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("rendering index: %v", err)
	}
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}
	ws, err := s.workspace(w, r)
	if err != nil {
		http.Error(w, "could not open session workspace", http.StatusInternalServerError)
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var notices []string
	threshold, err := chunker.ParseThreshold(r.FormValue("chunk_size"))
	if err != nil {
		threshold = s.defaultThreshold
		notices = append(notices, fmt.Sprintf(
			"Could not parse chunk size %q, using default %s.",
			r.FormValue("chunk_size"), chunker.FormatThreshold(threshold)))
	}

	for _, fh := range r.MultipartForm.File["files"] {
		if notice := s.saveUpload(ws, fh); notice != "" {
			notices = append(notices, notice)
		}
	}

	res, err := chunker.Process(ws.InputDir, ws.OutputDir, chunker.Options{Threshold: threshold})
	if err != nil {
		log.Printf("processing session %s: %v", ws.ID, err)
		http.Error(w, "processing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	res.Notices = append(notices, res.Notices...)

	s.mu.Lock()
	s.results[ws.ID] = res
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// saveUpload writes one uploaded file into the workspace input tree. Zip
// uploads are expanded in place of being stored; a malformed zip yields a
// user-facing notice and is skipped.
func (s *Server) saveUpload(ws *session.Workspace, fh *multipart.FileHeader) string {
	name := filepath.Base(fh.Filename)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Sprintf("Skipped upload with unusable name %q.", fh.Filename)
	}
	src, err := fh.Open()
	if err != nil {
		return fmt.Sprintf("Could not read upload %q, skipped.", name)
	}
	defer src.Close()

	dest := filepath.Join(ws.InputDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Sprintf("Could not store upload %q, skipped.", name)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Sprintf("Could not store upload %q, skipped.", name)
	}
	out.Close()

	if !chunker.IsZipName(name) {
		return ""
	}
	// Zip uploads are expanded into the input tree and the archive dropped.
	err = chunker.ExtractZip(dest, ws.InputDir)
	os.Remove(dest)
	if errors.Is(err, chunker.ErrBadArchive) || errors.Is(err, chunker.ErrUnsafePath) {
		return fmt.Sprintf("Uploaded archive %q is not a valid zip, skipped.", name)
	}
	if err != nil {
		return fmt.Sprintf("Could not expand archive %q, skipped.", name)
	}
	return ""
}

func (s *Server) handleDownloadBundle(w http.ResponseWriter, r *http.Request) {
	ws, err := s.workspace(w, r)
	if err != nil {
		http.Error(w, "could not open session workspace", http.StatusInternalServerError)
		return
	}
	s.serveChunk(w, r, ws, chunker.BundleName)
}

func (s *Server) handleDownloadChunk(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, "invalid chunk name", http.StatusBadRequest)
		return
	}
	ws, err := s.workspace(w, r)
	if err != nil {
		http.Error(w, "could not open session workspace", http.StatusInternalServerError)
		return
	}
	s.serveChunk(w, r, ws, name)
}

func (s *Server) serveChunk(w http.ResponseWriter, r *http.Request, ws *session.Workspace, name string) {
	path := filepath.Join(ws.OutputDir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "application/zip")
	http.ServeFile(w, r, path)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "use POST", http.StatusMethodNotAllowed)
		return
	}
	ws, err := s.workspace(w, r)
	if err != nil {
		http.Error(w, "could not open session workspace", http.StatusInternalServerError)
		return
	}
	if err := ws.Reset(); err != nil {
		http.Error(w, "could not reset session workspace", http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	delete(s.results, ws.ID)
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
