package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedRequest reports a request head that could not be parsed.
var ErrMalformedRequest = errors.New("malformed request")

// Request is one parsed HTTP request. It is private to the connection
// it was read from and only valid while that connection is open.
type Request struct {
	Method  string
	Path    string
	Headers *Headers

	// Body reads exactly the declared content-length bytes, starting
	// with whatever was buffered past the header section and pulling
	// the rest from the connection on demand. Close drains it.
	Body io.ReadCloser
}

// readRequest reads one request head off conn and leaves Body
// positioned at the start of the declared body.
func readRequest(conn io.Reader) (*Request, error) {
	lines := newLineReader(conn, defaultBufSize)

	line, ok := lines.next()
	if !ok {
		return nil, fmt.Errorf("%w: request line missing", ErrMalformedRequest)
	}

	fields := strings.Fields(string(line))
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: request line %q", ErrMalformedRequest, line)
	}

	headers := NewHeaders()
	for {
		line, ok := lines.next()
		if !ok {
			break
		}
		name, value, found := strings.Cut(string(line), ":")
		if !found {
			return nil, fmt.Errorf("%w: header line %q", ErrMalformedRequest, line)
		}
		headers.Add(name, strings.TrimLeft(value, " \t"))
	}

	req := &Request{
		Method:  strings.ToUpper(fields[0]),
		Path:    fields[1],
		Headers: headers,
	}

	contentLength := parseContentLength(headers.Get("content-length"))
	if contentLength == 0 {
		req.Body = noBody{}
	} else {
		body := io.MultiReader(bytes.NewReader(lines.remainder()), conn)
		req.Body = &bodyReader{reader: io.LimitReader(body, contentLength)}
	}
	return req, nil
}

// parseContentLength reads a declared body size. Anything that does
// not parse as a non-negative integer counts as no body.
func parseContentLength(headerval string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(headerval), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
