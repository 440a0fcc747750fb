package static

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzhttp"
	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
)

// NewHandler serves the files under directory. The returned closer releases
// the opened root and must be closed once the handler is no longer used.
func NewHandler(directory string, logger logrus.FieldLogger) (http.Handler, io.Closer, error) {
	root, err := os.OpenRoot(directory)
	if err != nil {
		return nil, nil, E.Cause(err, "open root directory")
	}
	fsys := confinedFS{root.FS()}
	files := &fileHandler{
		fs:         fsys,
		fileServer: http.FileServerFS(fsys),
	}
	return &requestLogger{
		handler: gzhttp.GzipHandler(files),
		logger:  logger,
	}, root, nil
}

const indexPage = "index.html"

type fileHandler struct {
	fs         fs.FS
	fileServer http.Handler
}

// ServeHTTP serves explicit index.html requests in place instead of
// redirecting them to the containing directory.
func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if path.Base(name) != indexPage {
		h.fileServer.ServeHTTP(w, r)
		return
	}
	file, err := h.fs.Open(strings.TrimPrefix(name, "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	content, isSeeker := file.(io.ReadSeeker)
	if !isSeeker {
		data, err := io.ReadAll(file)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		content = bytes.NewReader(data)
	}
	http.ServeContent(w, r, name, info.ModTime(), content)
}

// confinedFS reports every open failure as not-exist. Missing files,
// unreadable files and paths escaping the root all become 404 so a client
// cannot probe what lies outside the root.
type confinedFS struct {
	fs fs.FS
}

func (f confinedFS) Open(name string) (fs.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

type requestLogger struct {
	handler http.Handler
	logger  logrus.FieldLogger
}

func (h *requestLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug(r.Method, " ", r.URL.Path, " from ", r.RemoteAddr)
	h.handler.ServeHTTP(w, r)
}
