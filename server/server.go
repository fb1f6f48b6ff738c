package server

import (
	"log/slog"
	"net"
)

// Server is a single-shot HTTP/1.1 server: each accepted connection
// gets one request parsed, one response written, then the connection
// is closed. There are no timeouts; a slow client occupies its worker
// until it finishes or hangs up.
type Server struct {
	Addr    string
	Handler Handler

	// Workers is the size of the fixed pool pulling accepted
	// connections off a shared queue. Zero or one means strictly
	// serial handling.
	Workers int
}

func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	defer l.Close()
	return s.Serve(l)
}

// Serve accepts connections on l and hands them to the worker pool.
// Only the accept loop touches the listener.
func (s *Server) Serve(l net.Listener) error {
	if s.Handler == nil {
		s.Handler = FileServer{Root: "www"}
	}
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	conns := make(chan net.Conn, workers)
	defer close(conns)
	for i := 0; i < workers; i++ {
		go s.worker(conns)
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		slog.Debug("accepted connection", "remote", conn.RemoteAddr())
		conns <- conn
	}
}

func (s *Server) worker(conns <-chan net.Conn) {
	for conn := range conns {
		if err := s.handleConnection(conn); err != nil {
			slog.Error("http error", "remote", conn.RemoteAddr(), "err", err)
		}
	}
}
