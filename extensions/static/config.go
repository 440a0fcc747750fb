package static

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sagernet/sing/common"
	E "github.com/sagernet/sing/common/exceptions"
)

const (
	DefaultName = "DDP Calculator"
	DefaultPort = 8080
)

// Config is fixed at startup and never mutated afterwards.
type Config struct {
	Name      string
	Port      uint16
	Directory string
}

// DefaultConfig serves the directory containing the running executable on DefaultPort.
func DefaultConfig() (Config, error) {
	executable, err := os.Executable()
	if err != nil {
		return Config{}, E.Cause(err, "locate executable")
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return Config{}, E.Cause(err, "resolve executable")
	}
	return Config{
		Name:      DefaultName,
		Port:      DefaultPort,
		Directory: filepath.Dir(executable),
	}, nil
}

func (c Config) Validate() error {
	if c.Directory == "" {
		return E.New("missing root directory")
	}
	if !filepath.IsAbs(c.Directory) {
		return E.New("root directory ", c.Directory, " is not absolute")
	}
	if !common.FileExists(c.Directory) {
		return E.New("root directory ", c.Directory, " does not exist")
	}
	info, err := os.Stat(c.Directory)
	if err != nil {
		return E.Cause(err, "stat root directory")
	}
	if !info.IsDir() {
		return E.New("root directory ", c.Directory, " is not a directory")
	}
	directory, err := os.Open(c.Directory)
	if err != nil {
		return E.Cause(err, "open root directory")
	}
	_, err = directory.Readdirnames(1)
	directory.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return E.Cause(err, "read root directory")
	}
	return nil
}
