// Package server accepts connections and hands parsed requests out.
package server

import (
	"errors"
	"iter"
	"net"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/weft-http/weft/config"
	"github.com/weft-http/weft/http"
	"github.com/weft-http/weft/internal/protocol/http1"
	"github.com/weft-http/weft/transport"
)

var (
	ErrPortInUse        = errors.New("the port is already in use")
	ErrPermissionDenied = errors.New("binding the port requires elevated permissions")
)

type Options struct {
	// Log enables a per-request log line.
	Log    bool
	Logger *logrus.Logger
	Config *config.Config
}

// Server owns a listener and a parser, producing one request per accepted
// connection.
type Server struct {
	listener net.Listener
	parser   *http1.Parser
	log      *logrus.Logger
	logOn    bool
}

// Bind listens on the port on all IPv4 interfaces.
func Bind(port uint16, opts Options) (*Server, error) {
	return listen("tcp4", "0.0.0.0:"+strconv.Itoa(int(port)), opts)
}

// BindIPv6 listens on the port on all IPv6 interfaces.
func BindIPv6(port uint16, opts Options) (*Server, error) {
	return listen("tcp6", "[::]:"+strconv.Itoa(int(port)), opts)
}

func listen(network, addr string, opts Options) (*Server, error) {
	listener, err := net.Listen(network, addr)
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return nil, ErrPortInUse
	case errors.Is(err, syscall.EACCES):
		return nil, ErrPermissionDenied
	case err != nil:
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Server{
		listener: listener,
		parser:   http1.NewParser(cfg),
		log:      log,
		logOn:    opts.Log,
	}, nil
}

// Next accepts a single connection and parses its request. The connection is
// closed on a parse failure.
func (s *Server) Next() (*http.Request, error) {
	conn, err := s.listener.Accept()
	if err != nil {
		return nil, err
	}

	client := transport.NewClient(conn)

	request, err := s.parser.Parse(client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	if s.logOn {
		s.log.WithFields(logrus.Fields{
			"method": request.Method.String(),
			"uri":    request.Uri.String(),
			"remote": request.Remote(),
		}).Info("request")
	}

	return request, nil
}

// Requests iterates over incoming requests until the listener is closed.
// Malformed requests are logged and skipped.
func (s *Server) Requests() iter.Seq[*http.Request] {
	return func(yield func(*http.Request) bool) {
		for {
			request, err := s.Next()
			if errors.Is(err, net.ErrClosed) {
				return
			}

			if err != nil {
				if s.logOn {
					s.log.WithError(err).Warn("dropping malformed request")
				}

				continue
			}

			if !yield(request) {
				return
			}
		}
	}
}

// Addr returns the address the server is bound to.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.listener.Close()
}
