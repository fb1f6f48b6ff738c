package server

import (
	"fmt"
	"net"
	"strings"
)

// Handler produces the Response for a parsed Request.
type Handler interface {
	Serve(*Request) *Response
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(*Request) *Response

func (f HandlerFunc) Serve(req *Request) *Response {
	return f(req)
}

// handleConnection reads one request off conn, writes exactly one
// final response, and closes the connection whatever happens.
func (s *Server) handleConnection(conn net.Conn) error {
	defer conn.Close()

	req, err := readRequest(conn)
	if err != nil {
		if sendErr := badRequestResponse().Send(conn); sendErr != nil {
			return fmt.Errorf("send 400: %w", sendErr)
		}
		return fmt.Errorf("read request: %w", err)
	}

	// Interim response first, so a waiting client starts sending the
	// body we are about to drain. Best-effort.
	if strings.EqualFold(req.Headers.Get("expect"), "100-continue") {
		if err := NewResponse(StatusContinue).Send(conn); err != nil {
			return fmt.Errorf("send 100 continue: %w", err)
		}
	}

	// Drain the declared body whether or not anyone wants it.
	if err := req.Body.Close(); err != nil {
		return fmt.Errorf("drain body: %w", err)
	}

	if req.Method != "GET" {
		if err := methodNotAllowedResponse().Send(conn); err != nil {
			return fmt.Errorf("send 405: %w", err)
		}
		return nil
	}

	resp := s.Handler.Serve(req)
	defer resp.Close()
	if err := resp.Send(conn); err != nil {
		return fmt.Errorf("send response: %w", err)
	}
	return nil
}
