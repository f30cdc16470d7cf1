package bancho

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestReadPacketPropagatesTransportError simulates a connection that dies
// at the start of the header: the underlying transport's first Read call
// (the opcode) fails. ReadPacket must surface that error
// rather than panic or return a zero-value packet.
func TestReadPacketPropagatesTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stream := NewMockStream(ctrl)
	transportErr := errors.New("connection reset by peer")
	stream.EXPECT().Read(2).Return(nil, transportErr)

	reg := NewRegistry()
	codec := reg.Select(1817)

	_, err := codec.ReadPacket(stream)
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
}

// TestReadPacketPropagatesTruncatedBody covers a transport that reads the
// header fine but is cut off before the body arrives in full.
func TestReadPacketPropagatesTruncatedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stream := NewMockStream(ctrl)
	reg := NewRegistry()
	codec := reg.Select(1817)

	gomock.InOrder(
		stream.EXPECT().Read(2).Return([]byte{2, 0}, nil),
		stream.EXPECT().Read(1).Return([]byte{0}, nil),
		stream.EXPECT().Read(4).Return([]byte{10, 0, 0, 0}, nil),
		stream.EXPECT().Read(10).Return(nil, errors.New("unexpected EOF")),
	)

	_, err := codec.ReadPacket(stream)
	require.Error(t, err)
}
