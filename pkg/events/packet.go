package events

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Marshal encodes an event as its op code followed by the msgpack body.
func Marshal(op uint8, v interface{}) ([]byte, error) {
	body, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte{op}, body...), nil
}

// Unmarshal decodes a payload produced by Marshal into the event type that
// belongs to its op code.
func Unmarshal(payload []byte) (uint8, interface{}, error) {
	if len(payload) == 0 {
		return 0, nil, ErrEmptyPayload
	}
	op, body := payload[0], payload[1:]

	var v interface{}
	switch op {
	case OpUpdateNotifySettings:
		v = &UpdateNotifySettings{}
	case OpSaveNotifySettings:
		v = &SaveNotifySettings{}
	default:
		return op, nil, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}

	if err := msgpack.Unmarshal(body, v); err != nil {
		return op, nil, err
	}
	return op, v, nil
}
