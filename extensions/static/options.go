package static

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Option func(*Server)

func WithLogger(logger *logrus.Entry) Option {
	return func(server *Server) {
		server.logger = logger
	}
}

// WithBanner redirects the startup banner, which goes to stdout by default.
func WithBanner(writer io.Writer) Option {
	return func(server *Server) {
		server.banner = writer
	}
}

// WithBrowserOpener replaces the browser launcher. A nil opener disables the launch.
func WithBrowserOpener(opener BrowserOpener) Option {
	return func(server *Server) {
		server.openBrowser = opener
	}
}
