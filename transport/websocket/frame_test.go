package websocket

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMask = []byte{0x37, 0xfa, 0x21, 0x3d}

func encode(t *testing.T, mask []byte, frames ...frame) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for _, f := range frames {
		require.NoError(t, writeFrame(w, f, mask))
	}

	return &buf
}

func TestFrame_RoundTrip(t *testing.T) {
	for _, size := range []int{0, 5, 125, 126, 65535, 65536} {
		for _, mask := range [][]byte{nil, testMask} {
			// Given: a frame of the given size
			payload := bytes.Repeat([]byte{'x'}, size)
			buf := encode(t, mask, frame{isFin: true, opCode: opText, payload: payload})

			// When: reading it back
			got, err := readFrame(bufio.NewReader(buf))

			// Then: it is unchanged
			require.NoError(t, err, "size %d", size)
			assert.True(t, got.isFin)
			assert.Equal(t, opText, got.opCode)
			assert.Equal(t, payload, got.payload)
		}
	}
}

func TestFrame_RFCExample(t *testing.T) {
	// masked "Hello" from RFC 6455 section 5.7
	raw := []byte{0x81, 0x85, 0x37, 0xfa, 0x21, 0x3d, 0x7f, 0x9f, 0x4d, 0x51, 0x58}

	got, err := readFrame(bufio.NewReader(bytes.NewReader(raw)))

	require.NoError(t, err)
	assert.Equal(t, "Hello", string(got.payload))
	assert.Equal(t, raw, encode(t, testMask, frame{isFin: true, opCode: opText, payload: []byte("Hello")}).Bytes())
}

func TestFrame_Invalid(t *testing.T) {
	t.Run("Oversized control frame", func(t *testing.T) {
		buf := encode(t, nil, frame{isFin: true, opCode: opPing, payload: make([]byte, 126)})

		_, err := readFrame(bufio.NewReader(buf))

		require.ErrorIs(t, err, ErrProtocol)
	})

	t.Run("Oversized message", func(t *testing.T) {
		raw := []byte{0x82, 127, 0, 0, 0, 0, 0x10, 0, 0, 1}

		_, err := readFrame(bufio.NewReader(bytes.NewReader(raw)))

		require.ErrorIs(t, err, ErrMessageTooLarge)
	})

	t.Run("Truncated payload", func(t *testing.T) {
		raw := []byte{0x81, 0x05, 'H', 'e'}

		_, err := readFrame(bufio.NewReader(bytes.NewReader(raw)))

		require.Error(t, err)
	})
}

func newTestConnection(in *bytes.Buffer) (*connection, *bytes.Buffer) {
	var out bytes.Buffer
	rw := bufio.NewReadWriter(bufio.NewReader(in), bufio.NewWriter(&out))

	return newConnection(rw), &out
}

func TestConnection_ReadMessage(t *testing.T) {
	t.Run("Reassembles fragments and answers pings", func(t *testing.T) {
		// Given: a message split in two with a ping in between
		in := encode(t, testMask,
			frame{isFin: false, opCode: opText, payload: []byte(`{"action":`)},
			frame{isFin: true, opCode: opPing, payload: []byte("hi")},
			frame{isFin: true, opCode: opContinuation, payload: []byte(`"game:current"}`)},
		)
		conn, out := newTestConnection(in)

		// When: reading a message
		message, err := conn.readMessage()

		// Then: the parts are joined and a pong was sent
		require.NoError(t, err)
		assert.JSONEq(t, `{"action":"game:current"}`, string(message))

		pong, err := readFrame(bufio.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, opPong, pong.opCode)
		assert.Equal(t, "hi", string(pong.payload))
	})

	t.Run("Close ends the connection", func(t *testing.T) {
		conn, out := newTestConnection(encode(t, testMask, frame{isFin: true, opCode: opClose}))

		_, err := conn.readMessage()

		require.ErrorIs(t, err, ErrConnectionClosed)
		assert.True(t, isClosed(err))

		echo, err := readFrame(bufio.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, opClose, echo.opCode)
	})

	t.Run("Stray continuation", func(t *testing.T) {
		conn, _ := newTestConnection(encode(t, testMask, frame{isFin: true, opCode: opContinuation}))

		_, err := conn.readMessage()

		require.ErrorIs(t, err, ErrProtocol)
	})
}

func TestConnection_Send(t *testing.T) {
	conn, out := newTestConnection(&bytes.Buffer{})

	require.NoError(t, conn.send("error", ResponsePayload{Error: "boom"}))

	f, err := readFrame(bufio.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, opText, f.opCode)
	assert.True(t, strings.HasPrefix(string(f.payload), `{"action":"error"`))
	assert.JSONEq(t, `{"action":"error","payload":{"error":"boom"}}`, string(f.payload))
}
