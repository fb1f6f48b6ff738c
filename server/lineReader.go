package server

import (
	"bytes"
	"io"
)

var crlf = []byte{'\r', '\n'}

const defaultBufSize = 16 * 1024

// lineReader is a non-restartable cursor over the CRLF-separated lines
// of a byte stream. The cursor is exhausted by a zero-length line (the
// end of the header section) or by the source running dry; bytes
// already read past the blank line are kept for the body.
type lineReader struct {
	src   io.Reader
	buf   []byte
	chunk []byte
	done  bool
	rest  []byte
}

func newLineReader(src io.Reader, bufsize int) *lineReader {
	if bufsize <= 0 {
		bufsize = defaultBufSize
	}
	return &lineReader{src: src, chunk: make([]byte, bufsize)}
}

// next returns the next line without its CRLF terminator. ok is false
// once the cursor is exhausted.
func (lr *lineReader) next() (line []byte, ok bool) {
	if lr.done {
		return nil, false
	}
	for {
		if i := bytes.Index(lr.buf, crlf); i >= 0 {
			line, lr.buf = lr.buf[:i], lr.buf[i+2:]
			if len(line) == 0 {
				lr.done = true
				lr.rest = lr.buf
				return nil, false
			}
			return line, true
		}

		n, _ := lr.src.Read(lr.chunk)
		if n == 0 {
			// Closed or starved; no more lines are coming.
			lr.done = true
			return nil, false
		}
		lr.buf = append(lr.buf, lr.chunk[:n]...)
	}
}

// remainder returns the bytes read past the blank line. It is only
// meaningful once next has returned false; it is empty when the source
// closed before the header section ended.
func (lr *lineReader) remainder() []byte {
	return lr.rest
}
