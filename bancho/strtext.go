package bancho

import "fmt"

// Wire tags for the length-prefixed string encoding.
const (
	stringTagEmpty  byte = 0x00
	stringTagFramed byte = 0x0b
)

// ReadString decodes a length-prefixed string: a one-byte tag, 0x00 for
// empty (no further bytes) or 0x0B followed by a ULEB128 byte length and
// that many UTF-8 bytes. Any other tag is ErrMalformedPayload.
func ReadString(s Stream) (string, error) {
	tag, err := ReadU8(s)
	if err != nil {
		return "", err
	}
	switch tag {
	case stringTagEmpty:
		return "", nil
	case stringTagFramed:
		length, err := ReadULEB128(s)
		if err != nil {
			return "", err
		}
		data, err := s.Read(int(length))
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: string tag 0x%02x is neither 0x00 nor 0x0b", ErrMalformedPayload, tag)
	}
}

// WriteString encodes value using the length-prefixed string wire format.
func WriteString(s Stream, value string) error {
	if value == "" {
		return WriteU8(s, stringTagEmpty)
	}
	if err := WriteU8(s, stringTagFramed); err != nil {
		return err
	}
	if err := WriteULEB128(s, uint64(len(value))); err != nil {
		return err
	}
	return s.Write([]byte(value))
}
