package sink

import "io"

// StreamSink writes to a caller-owned io.Writer. Unlike File, a Stream
// target never opens or closes the underlying writer — it is handed an
// already-open stream and only ever writes to it, mirroring the original
// library's distinction between a target that owns a FILE* (File) and one
// that is handed an already-open FILE* (Stream).
type StreamSink struct {
	w io.Writer
}

// NewStream wraps an already-open writer as a StreamSink.
func NewStream(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Open() error  { return nil }
func (s *StreamSink) Close() error { return nil }

func (s *StreamSink) Unsupported() bool { return false }
func (s *StreamSink) Synchronous() bool { return false }

func (s *StreamSink) Write(p []byte) (int, error) { return s.w.Write(p) }
