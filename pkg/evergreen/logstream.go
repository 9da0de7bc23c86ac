package evergreen

import (
	"bufio"
	"io"
)

const maxLogLineBytes = 1024 * 1024

// LogStream yields a log body line by line without buffering the whole log
// in memory. Callers must Close it on every exit path to release the
// underlying connection.
type LogStream struct {
	body    io.ReadCloser
	cancel  func()
	scanner *bufio.Scanner
}

// NewLogStream wraps a streaming response body. cancel, when non-nil, is
// invoked on Close to release the request.
func NewLogStream(body io.ReadCloser, cancel func()) *LogStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLineBytes)
	return &LogStream{body: body, cancel: cancel, scanner: scanner}
}

// Scan advances to the next line, returning false at end of stream or on
// error. Check Err after Scan returns false.
func (s *LogStream) Scan() bool {
	return s.scanner.Scan()
}

// Text returns the current line without its trailing newline.
func (s *LogStream) Text() string {
	return s.scanner.Text()
}

// Err returns the first error encountered while reading, if any.
func (s *LogStream) Err() error {
	return s.scanner.Err()
}

// Close releases the underlying connection. It is safe to call more than
// once.
func (s *LogStream) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.body.Close()
}
