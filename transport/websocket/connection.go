package websocket

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type connection struct {
	reader *bufio.Reader

	mu     sync.Mutex
	writer *bufio.Writer
}

func newConnection(rw *bufio.ReadWriter) *connection {
	return &connection{reader: rw.Reader, writer: rw.Writer}
}

func (that *connection) write(f frame) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return writeFrame(that.writer, f, nil)
}

// send - writes action and payload as one text message.
func (that *connection) send(action string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return that.write(frame{isFin: true, opCode: opText, payload: message})
}

func (that *connection) sendBinary(data []byte) error {
	return that.write(frame{isFin: true, opCode: opBinary, payload: data})
}

// readMessage - returns the next data message, reassembling fragments and
// answering pings on the way.
func (that *connection) readMessage() ([]byte, error) {
	var message []byte
	started := false

	for {
		f, err := readFrame(that.reader)
		if err != nil {
			return nil, err
		}

		switch f.opCode {
		case opPing:
			if err = that.write(frame{isFin: true, opCode: opPong, payload: f.payload}); err != nil {
				return nil, err
			}
			continue
		case opPong:
			continue
		case opClose:
			_ = that.write(frame{isFin: true, opCode: opClose, payload: f.payload})
			return nil, ErrConnectionClosed
		case opText, opBinary:
			if started {
				return nil, fmt.Errorf("%w: new message inside a fragmented one", ErrProtocol)
			}
			started = true
		case opContinuation:
			if !started {
				return nil, fmt.Errorf("%w: continuation without a message", ErrProtocol)
			}
		default:
			return nil, fmt.Errorf("%w: unknown opcode %#x", ErrProtocol, f.opCode)
		}

		if len(message)+len(f.payload) > maxMessageBytes {
			return nil, ErrMessageTooLarge
		}

		message = append(message, f.payload...)
		if f.isFin {
			return message, nil
		}
	}
}

func isClosed(err error) bool {
	return errors.Is(err, ErrConnectionClosed)
}
