package bancho

import "fmt"

// EnvelopeKind selects how a Codec frames one packet on the wire.
type EnvelopeKind uint8

const (
	// EnvelopeLegacy is the framing of builds before b323: u16 opcode, u32 body
	// length, and a body that is always gzip-compressed, whether or not
	// compression would help.
	EnvelopeLegacy EnvelopeKind = iota

	// EnvelopeModern is the build >= 323 framing: u16 opcode, a bool
	// compression flag, u32 body length, and a body that is gzipped only
	// when the flag is set.
	EnvelopeModern
)

// header is the decoded fixed-size portion of one packet's envelope.
type header struct {
	opcode      uint16
	compressed  bool
	bodyLength  uint32
}

// readHeader reads one envelope's fixed fields, branching on kind. It does
// not touch the body.
func readHeader(s Stream, kind EnvelopeKind) (header, error) {
	opcode, err := ReadU16(s)
	if err != nil {
		return header{}, err
	}
	switch kind {
	case EnvelopeLegacy:
		length, err := ReadU32(s)
		if err != nil {
			return header{}, err
		}
		return header{opcode: opcode, compressed: true, bodyLength: length}, nil
	case EnvelopeModern:
		compressed, err := ReadBool(s)
		if err != nil {
			return header{}, err
		}
		length, err := ReadU32(s)
		if err != nil {
			return header{}, err
		}
		return header{opcode: opcode, compressed: compressed, bodyLength: length}, nil
	default:
		return header{}, fmt.Errorf("%w: unknown envelope kind %d", ErrInvalidPacket, kind)
	}
}

// writeHeader writes one envelope's fixed fields ahead of the body.
func writeHeader(s Stream, kind EnvelopeKind, h header) error {
	if err := WriteU16(s, h.opcode); err != nil {
		return err
	}
	switch kind {
	case EnvelopeLegacy:
		return WriteU32(s, h.bodyLength)
	case EnvelopeModern:
		if err := WriteBool(s, h.compressed); err != nil {
			return err
		}
		return WriteU32(s, h.bodyLength)
	default:
		return fmt.Errorf("%w: unknown envelope kind %d", ErrInvalidPacket, kind)
	}
}

// readBody reads length bytes from s and, if compressed, gzip-decompresses
// them. maxSize of 0 disables the size cap.
func readBody(s Stream, length uint32, compressed bool, maxSize uint32) ([]byte, error) {
	if maxSize != 0 && length > maxSize {
		return nil, fmt.Errorf("%w: body length %d exceeds cap %d", ErrOversize, length, maxSize)
	}
	data, err := s.Read(int(length))
	if err != nil {
		return nil, err
	}
	if !compressed {
		return data, nil
	}
	return GzipDecompress(data)
}

// writeBody gzip-compresses data when compressed is true, then writes the
// envelope header followed by the resulting body.
func writeBody(s Stream, kind EnvelopeKind, opcode uint16, data []byte, compressed bool) error {
	body := data
	if compressed {
		compressedBody, err := GzipCompress(data)
		if err != nil {
			return err
		}
		body = compressedBody
	}
	if err := writeHeader(s, kind, header{opcode: opcode, compressed: compressed, bodyLength: uint32(len(body))}); err != nil {
		return err
	}
	return s.Write(body)
}
