package bancho

import (
	"encoding/binary"
	"fmt"
	"math"
)

// All multi-byte values on the wire are little-endian, the one constant
// across every client build the codec supports.

func ReadU8(s Stream) (uint8, error) {
	b, err := s.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func WriteU8(s Stream, v uint8) error {
	return s.Write([]byte{v})
}

func ReadS8(s Stream) (int8, error) {
	v, err := ReadU8(s)
	return int8(v), err
}

func WriteS8(s Stream, v int8) error {
	return WriteU8(s, uint8(v))
}

func ReadBool(s Stream) (bool, error) {
	v, err := ReadU8(s)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func WriteBool(s Stream, v bool) error {
	if v {
		return WriteU8(s, 1)
	}
	return WriteU8(s, 0)
}

func ReadU16(s Stream) (uint16, error) {
	b, err := s.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func WriteU16(s Stream, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.Write(b[:])
}

func ReadS16(s Stream) (int16, error) {
	v, err := ReadU16(s)
	return int16(v), err
}

func WriteS16(s Stream, v int16) error {
	return WriteU16(s, uint16(v))
}

func ReadU32(s Stream) (uint32, error) {
	b, err := s.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func WriteU32(s Stream, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return s.Write(b[:])
}

func ReadS32(s Stream) (int32, error) {
	v, err := ReadU32(s)
	return int32(v), err
}

func WriteS32(s Stream, v int32) error {
	return WriteU32(s, uint32(v))
}

func ReadU64(s Stream) (uint64, error) {
	b, err := s.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func WriteU64(s Stream, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return s.Write(b[:])
}

func ReadS64(s Stream) (int64, error) {
	v, err := ReadU64(s)
	return int64(v), err
}

func WriteS64(s Stream, v int64) error {
	return WriteU64(s, uint64(v))
}

func ReadF32(s Stream) (float32, error) {
	v, err := ReadU32(s)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func WriteF32(s Stream, v float32) error {
	return WriteU32(s, math.Float32bits(v))
}

func ReadF64(s Stream) (float64, error) {
	v, err := ReadU64(s)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func WriteF64(s Stream, v float64) error {
	return WriteU64(s, math.Float64bits(v))
}

// readIntList reads a length-prefixed list of signed 32-bit ids, with the
// length itself encoded as either an s16 or an s32, per lengthWidth.
func readIntList(s Stream, lengthWidth int) ([]int32, error) {
	var count int
	switch lengthWidth {
	case 2:
		n, err := ReadS16(s)
		if err != nil {
			return nil, err
		}
		count = int(n)
	case 4:
		n, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		count = int(n)
	default:
		return nil, fmt.Errorf("%w: unsupported list length width %d", ErrMalformedPayload, lengthWidth)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative list length %d", ErrMalformedPayload, count)
	}
	out := make([]int32, count)
	for i := range out {
		v, err := ReadS32(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeIntList(s Stream, lengthWidth int, values []int32) error {
	switch lengthWidth {
	case 2:
		if err := WriteS16(s, int16(len(values))); err != nil {
			return err
		}
	case 4:
		if err := WriteS32(s, int32(len(values))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unsupported list length width %d", ErrMalformedPayload, lengthWidth)
	}
	for _, v := range values {
		if err := WriteS32(s, v); err != nil {
			return err
		}
	}
	return nil
}
