package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

const protocol = "HTTP/1.1"

// Status lines used by this server.
const (
	StatusOK               = "200 OK"
	StatusContinue         = "100 Continue"
	StatusBadRequest       = "400 Bad Request"
	StatusNotFound         = "404 Not Found"
	StatusMethodNotAllowed = "405 Method Not Allowed"
)

// Response is a one-shot HTTP response: build it, Send it once, then
// discard it. Sending the same Response twice is a caller error and is
// not enforced structurally.
type Response struct {
	Status  string
	Headers *Headers

	body io.Reader
}

// NewResponse builds a response with no body source at all. No
// content-length header is emitted for it.
func NewResponse(status string) *Response {
	return &Response{Status: status, Headers: NewHeaders()}
}

// NewBufferResponse builds a response backed by an in-memory buffer.
func NewBufferResponse(status, contentType string, body []byte) *Response {
	r := NewResponse(status)
	r.Headers.Add("content-type", contentType)
	r.body = bytes.NewReader(body)
	return r
}

// NewTextResponse builds a buffer-backed response from text, encoded
// immediately.
func NewTextResponse(status, contentType, text string) *Response {
	return NewBufferResponse(status, contentType, []byte(text))
}

// NewFileResponse builds a response streamed from an open file. The
// Response owns the file; Close releases it.
func NewFileResponse(status, contentType string, f *os.File) *Response {
	r := NewResponse(status)
	r.Headers.Add("content-type", contentType)
	r.body = f
	return r
}

// Send serializes the response to w: status line, headers in
// first-added order, blank line, then the body only when the
// negotiated content-length is greater than zero.
func (r *Response) Send(w io.Writer) error {
	length, err := r.negotiateContentLength()
	if err != nil {
		return err
	}

	var head bytes.Buffer
	head.WriteString(protocol)
	head.WriteByte(' ')
	head.WriteString(r.Status)
	head.Write(crlf)
	r.Headers.each(func(name, value string) {
		head.WriteString(name)
		head.WriteString(": ")
		head.WriteString(value)
		head.Write(crlf)
	})
	head.Write(crlf)
	if _, err := w.Write(head.Bytes()); err != nil {
		return fmt.Errorf("write response head: %w", err)
	}

	if length <= 0 || r.body == nil {
		return nil
	}
	// io.Copy lets TCP connections take the sendfile path for
	// file-backed bodies.
	if _, err := io.Copy(w, r.body); err != nil {
		return fmt.Errorf("write response body: %w", err)
	}
	return nil
}

// negotiateContentLength decides the body size exactly once, right
// before transmission: an explicit content-length header is trusted;
// otherwise the body source is probed and the header added.
func (r *Response) negotiateContentLength() (int64, error) {
	if explicit := r.Headers.Get("content-length"); explicit != "" {
		return parseContentLength(explicit), nil
	}
	if r.body == nil {
		return 0, nil
	}

	var length int64
	switch b := r.body.(type) {
	case *bytes.Reader:
		length = int64(b.Len())
	case interface{ Stat() (os.FileInfo, error) }:
		fi, err := b.Stat()
		if err != nil {
			return 0, fmt.Errorf("probe body size: %w", err)
		}
		length = fi.Size()
	default:
		return 0, fmt.Errorf("body source %T has no known size", r.body)
	}
	r.Headers.Add("content-length", strconv.FormatInt(length, 10))
	return length, nil
}

// Close releases the body source when it holds one (open files).
func (r *Response) Close() error {
	if c, ok := r.body.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func badRequestResponse() *Response {
	return NewTextResponse(StatusBadRequest, "text/plain", "Bad Request")
}

func notFoundResponse() *Response {
	return NewTextResponse(StatusNotFound, "text/plain", "Not Found")
}

func methodNotAllowedResponse() *Response {
	return NewTextResponse(StatusMethodNotAllowed, "text/plain", "Method Not Allowed")
}
