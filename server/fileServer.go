package server

import (
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FileServer serves files from beneath a single root directory,
// read-only. A request for "/" resolves to "/index.html"; any path
// that escapes the root after normalization is answered with 404, so
// traversal attempts never reach the file system.
type FileServer struct {
	Root string
}

func (s FileServer) Serve(req *Request) *Response {
	path := req.Path
	if path == "/" {
		path = "/index.html"
	}

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return notFoundResponse()
	}
	full := filepath.Join(root, filepath.FromSlash(strings.TrimLeft(path, "/")))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return notFoundResponse()
	}

	f, err := os.Open(full)
	if err != nil {
		return notFoundResponse()
	}
	if fi, err := f.Stat(); err != nil || fi.IsDir() {
		f.Close()
		return notFoundResponse()
	}

	contentType := mime.TypeByExtension(filepath.Ext(full))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return NewFileResponse(StatusOK, contentType, f)
}
