package static

import (
	"errors"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/sagernet/ddp-server/extensions/log"
	"github.com/sagernet/sing/common"
	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
)

type Server struct {
	config      Config
	logger      *logrus.Entry
	banner      io.Writer
	openBrowser BrowserOpener

	root        io.Closer
	errorWriter io.Closer
	httpServer  *http.Server
	listener    net.Listener
}

func NewServer(config Config, options ...Option) (*Server, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	s := &Server{
		config:      config,
		logger:      log.NewLogger("static"),
		banner:      os.Stdout,
		openBrowser: OpenBrowser,
	}
	for _, option := range options {
		option(s)
	}
	handler, root, err := NewHandler(config.Directory, s.logger)
	if err != nil {
		return nil, err
	}
	errorWriter := s.logger.WriterLevel(logrus.WarnLevel)
	s.root = root
	s.errorWriter = errorWriter
	s.httpServer = &http.Server{
		Handler:  handler,
		ErrorLog: stdlog.New(errorWriter, "", 0),
	}
	return s, nil
}

// Start binds the listening socket, prints the banner, fires the browser
// launch and serves in the background. A bind failure is returned as
// *BindError before anything is printed.
func (s *Server) Start() error {
	address := net.JoinHostPort("", strconv.Itoa(int(s.config.Port)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return &BindError{Address: address, Cause: err}
	}
	s.listener = listener
	url := s.URL()
	err = writeBanner(s.banner, s.config.Name, url)
	if err != nil {
		s.logger.Warn(E.Cause(err, "write banner"))
	}
	launchBrowser(s.openBrowser, url, s.logger)
	go s.loopIn()
	return nil
}

func (s *Server) loopIn() {
	err := s.httpServer.Serve(s.listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.HandleError(err)
	}
}

func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// URL returns the address printed in the banner, using the bound port.
func (s *Server) URL() string {
	port := int(s.config.Port)
	if tcpAddr, isTCPAddr := s.Addr().(*net.TCPAddr); isTCPAddr {
		port = tcpAddr.Port
	}
	return "http://localhost:" + strconv.Itoa(port)
}

// Close releases the listening socket immediately and drops open connections.
func (s *Server) Close() error {
	err := common.Close(s.httpServer, s.root, s.errorWriter)
	if s.listener != nil {
		closeErr := s.listener.Close()
		if err == nil && closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = closeErr
		}
	}
	return err
}

func (s *Server) HandleError(err error) {
	if E.IsClosed(err) {
		return
	}
	s.logger.Warn(err)
}
