package bancho

import "fmt"

// Stream is the byte-oriented transport the codec reads and writes against.
// It mirrors chio.py's Stream abstract class: sequential read(n)/write(data),
// nothing else. The codec never inspects a Stream beyond this interface, so
// any socket, buffered reader, or in-memory implementation works.
type Stream interface {
	// Read returns exactly n bytes, or an error if fewer are available.
	// Read with a negative n on a MemoryStream returns all remaining bytes
	// (Read(0) returns none); other Stream implementations are not
	// required to support that.
	Read(n int) ([]byte, error)

	// Write appends data to the stream.
	Write(data []byte) error
}

// ByteCounter is implemented by streams that can report how many bytes
// remain to be read, such as MemoryStream. The modern spectator-frame and
// score-frame codecs use this to detect an optional trailing ScoreFrame.
type ByteCounter interface {
	Remaining() int
}

// MemoryStream is an in-memory Stream backed by a byte slice, the
// workhorse used to decode/encode one packet payload at a time once the
// envelope has framed it off the wire.
type MemoryStream struct {
	data []byte
	pos  int
}

// NewMemoryStream wraps data for reading, or, given nil, provides an empty
// buffer ready for writing.
func NewMemoryStream(data []byte) *MemoryStream {
	return &MemoryStream{data: data}
}

func (s *MemoryStream) Read(n int) ([]byte, error) {
	if n < 0 {
		n = len(s.data) - s.pos
	}
	if s.pos+n > len(s.data) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedPayload, n, len(s.data)-s.pos)
	}
	out := s.data[s.pos : s.pos+n]
	s.pos += n
	return out, nil
}

func (s *MemoryStream) Write(data []byte) error {
	s.data = append(s.data, data...)
	return nil
}

// Remaining reports how many unread bytes are left in the buffer.
func (s *MemoryStream) Remaining() int {
	return len(s.data) - s.pos
}

// Bytes returns the stream's full backing buffer (for a write-only stream,
// everything written so far).
func (s *MemoryStream) Bytes() []byte {
	return s.data
}
