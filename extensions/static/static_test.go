package static

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

const indexContent = "<h1>Hi</h1>"

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// newTestRoot lays out a root directory with a sibling secret.txt placed
// just outside it.
func newTestRoot(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "root")
	mustWrite(t, filepath.Join(base, "secret.txt"), "outside")
	mustWrite(t, filepath.Join(root, "index.html"), indexContent)
	mustWrite(t, filepath.Join(root, "docs", "notes.txt"), "notes")
	return root
}

func mustWrite(t *testing.T, name string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
