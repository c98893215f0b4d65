package httpapi

import (
	"archive/zip"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// staticFiles is the in-memory unpack of the web UI archive.
type staticFiles struct {
	files map[string][]byte
}

// loadZip reads the whole archive into memory; the UI is small and the
// process never touches the file again.
func loadZip(archivePath string) (*staticFiles, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open web archive: %w", err)
	}
	defer zr.Close()

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in archive: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s in archive: %w", f.Name, err)
		}
		files[path.Clean(f.Name)] = data
	}
	return &staticFiles{files: files}, nil
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if s.static == nil {
		fail(w, http.StatusNotFound, "web ui not available")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/web")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "index.html"
	}
	name = path.Clean(name)

	data, okFile := s.static.files[name]
	if !okFile {
		// SPA routing: unknown paths fall back to the index page.
		data, okFile = s.static.files["index.html"]
		if !okFile {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		name = "index.html"
	}

	ctype := mime.TypeByExtension(path.Ext(name))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.Write(data)
}
