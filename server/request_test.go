package server

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadRequest(t *testing.T) {
	req, err := readRequest(strings.NewReader("GET /index.html HTTP/1.1\r\nHost: x\r\n\r\n"))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.Path != "/index.html" {
		t.Errorf("Path = %q, want /index.html", req.Path)
	}
	if got := req.Headers.Get("host"); got != "x" {
		t.Errorf("host = %q, want x", got)
	}
}

func TestReadRequestUppercasesMethod(t *testing.T) {
	req, err := readRequest(strings.NewReader("get / HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	if req.Method != "GET" {
		t.Errorf("Method = %q, want GET", req.Method)
	}
}

func TestReadRequestMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"two tokens", "GET /\r\n\r\n"},
		{"four tokens", "GET / HTTP/1.1 junk\r\n\r\n"},
		{"empty stream", ""},
		{"header without colon", "GET / HTTP/1.1\r\nHost example\r\n\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readRequest(strings.NewReader(tt.raw))
			if !errors.Is(err, ErrMalformedRequest) {
				t.Fatalf("err = %v, want ErrMalformedRequest", err)
			}
		})
	}
}

func TestReadRequestBodySpansBufferedAndUnread(t *testing.T) {
	raw := "POST /submit HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello world"
	// Small reads so part of the body arrives after the header scan.
	req, err := readRequest(&chunkReader{data: []byte(raw), size: 5})
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "hello world" {
		t.Errorf("body = %q, want %q", body, "hello world")
	}
}

func TestReadRequestBodyBounded(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: 5\r\n\r\nhelloEXTRA"
	req, err := readRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestReadRequestBadContentLength(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: banana\r\n\r\n"
	req, err := readRequest(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestReadRequestHeaderValueTrimmed(t *testing.T) {
	req, err := readRequest(strings.NewReader("GET / HTTP/1.1\r\nAccept:   text/html\r\n\r\n"))
	if err != nil {
		t.Fatalf("readRequest: %v", err)
	}
	if got := req.Headers.Get("accept"); got != "text/html" {
		t.Errorf("accept = %q, want %q", got, "text/html")
	}
}
