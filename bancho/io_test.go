package bancho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	s := NewMemoryStream(nil)

	require.NoError(t, WriteU8(s, 0xAB))
	require.NoError(t, WriteS8(s, -5))
	require.NoError(t, WriteBool(s, true))
	require.NoError(t, WriteU16(s, 0xBEEF))
	require.NoError(t, WriteS16(s, -1234))
	require.NoError(t, WriteU32(s, 0xDEADBEEF))
	require.NoError(t, WriteS32(s, -123456789))
	require.NoError(t, WriteU64(s, 0xFFEEDDCCBBAA9988))
	require.NoError(t, WriteS64(s, -1))
	require.NoError(t, WriteF32(s, 3.25))
	require.NoError(t, WriteF64(s, -2.5))

	r := NewMemoryStream(s.Bytes())

	u8, err := ReadU8(r)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)

	s8, err := ReadS8(r)
	require.NoError(t, err)
	assert.Equal(t, int8(-5), s8)

	b, err := ReadBool(r)
	require.NoError(t, err)
	assert.True(t, b)

	u16, err := ReadU16(r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	s16, err := ReadS16(r)
	require.NoError(t, err)
	assert.Equal(t, int16(-1234), s16)

	u32, err := ReadU32(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	s32, err := ReadS32(r)
	require.NoError(t, err)
	assert.Equal(t, int32(-123456789), s32)

	u64, err := ReadU64(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFFEEDDCCBBAA9988), u64)

	s64, err := ReadS64(r)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), s64)

	f32, err := ReadF32(r)
	require.NoError(t, err)
	assert.Equal(t, float32(3.25), f32)

	f64, err := ReadF64(r)
	require.NoError(t, err)
	assert.Equal(t, -2.5, f64)
}

func TestReadShortStreamIsMalformed(t *testing.T) {
	s := NewMemoryStream([]byte{0x01})
	_, err := ReadU32(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestULEB128RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16384, 1<<63 - 1}
	for _, v := range values {
		s := NewMemoryStream(nil)
		require.NoError(t, WriteULEB128(s, v))
		r := NewMemoryStream(s.Bytes())
		got, err := ReadULEB128(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestULEB128ZeroIsSingleByte(t *testing.T) {
	s := NewMemoryStream(nil)
	require.NoError(t, WriteULEB128(s, 0))
	assert.Equal(t, []byte{0x00}, s.Bytes())
}

func TestULEB128NeverTerminates(t *testing.T) {
	data := make([]byte, maxULEB128Bytes+1)
	for i := range data {
		data[i] = 0x80
	}
	s := NewMemoryStream(data)
	_, err := ReadULEB128(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"osu!",
		string(make([]byte, 300)),
		"héllo wörld é中",
	}
	for _, c := range cases {
		s := NewMemoryStream(nil)
		require.NoError(t, WriteString(s, c))
		r := NewMemoryStream(s.Bytes())
		got, err := ReadString(r)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestStringEmptyIsSingleByte(t *testing.T) {
	s := NewMemoryStream(nil)
	require.NoError(t, WriteString(s, ""))
	assert.Equal(t, []byte{stringTagEmpty}, s.Bytes())
}

func TestStringInvalidTag(t *testing.T) {
	s := NewMemoryStream([]byte{0x05})
	_, err := ReadString(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestGzipRoundTrip(t *testing.T) {
	payloads := [][]byte{{}, []byte("hello"), make([]byte, 4096)}
	for _, p := range payloads {
		compressed, err := GzipCompress(p)
		require.NoError(t, err)
		decompressed, err := GzipDecompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, p, decompressed)
	}
}
