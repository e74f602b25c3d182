package websocket

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	opContinuation byte = 0x0
	opText         byte = 0x1
	opBinary       byte = 0x2
	opClose        byte = 0x8
	opPing         byte = 0x9
	opPong         byte = 0xa

	maxMessageBytes = 1 << 20
)

var (
	ErrConnectionClosed = errors.New("connection closed by peer")
	ErrMessageTooLarge  = errors.New("message too large")
	ErrProtocol         = errors.New("websocket protocol error")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	payload []byte
}

func (that frame) isControl() bool {
	return that.opCode&0x8 != 0
}

// writeFrame - writes f and flushes. A non-nil mask is applied as a client would.
func writeFrame(w *bufio.Writer, f frame, mask []byte) error {
	header := make([]byte, 2, 14)
	header[0] = f.opCode
	if f.isFin {
		header[0] |= 0x80
	}

	length := uint64(len(f.payload))
	switch {
	case length < 126:
		header[1] = byte(length)
	case length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, length)
	}

	payload := f.payload
	if mask != nil {
		header[1] |= 0x80
		header = append(header, mask...)

		payload = make([]byte, len(f.payload))
		for i, b := range f.payload {
			payload[i] = b ^ mask[i%4]
		}
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

func readFrame(r *bufio.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	f := frame{
		isFin:  header[0]&0x80 != 0,
		opCode: header[0] & 0x0f,
	}
	masked := header[1]&0x80 != 0

	length, err := readPayloadLength(r, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if f.isControl() && (length > 125 || !f.isFin) {
		return frame{}, fmt.Errorf("%w: malformed control frame", ErrProtocol)
	}

	if length > maxMessageBytes {
		return frame{}, ErrMessageTooLarge
	}

	var mask []byte
	if masked {
		mask = make([]byte, 4)
		if _, err = io.ReadFull(r, mask); err != nil {
			return frame{}, fmt.Errorf("failed to read mask: %w", err)
		}
	}

	f.payload = make([]byte, length)
	if _, err = io.ReadFull(r, f.payload); err != nil {
		return frame{}, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range f.payload {
			f.payload[i] ^= mask[i%4]
		}
	}

	return f, nil
}

func readPayloadLength(r *bufio.Reader, short byte) (uint64, error) {
	switch short {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(r, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(r, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(short), nil
	}
}
