package events

import (
	"encoding/json"
	"strconv"

	"github.com/meower-media/notify/pkg/notify"
	"github.com/vmihailenco/msgpack/v5"
)

type V1Packet struct {
	Cmd   string      `json:"cmd" msgpack:"cmd"`
	Val   interface{} `json:"val" msgpack:"val"`
	Nonce string      `json:"nonce,omitempty" msgpack:"nonce,omitempty"`
}

type V1UpdateNotifySettings struct {
	ChatId   string                         `json:"chat_id" msgpack:"chat_id"`
	UserId   string                         `json:"user_id" msgpack:"user_id"`
	Known    bool                           `json:"known" msgpack:"known"`
	Muted    bool                           `json:"muted" msgpack:"muted"`
	Settings notify.InputPeerNotifySettings `json:"settings" msgpack:"settings"`
}

// Packet is a packet encoded once for every protocol format.
type Packet struct {
	Nonce int64

	JsonEncoded    []byte
	MsgpackEncoded []byte
}

func createPacket(nonce int64, v1 *V1Packet) (*Packet, error) {
	var p = Packet{Nonce: nonce}
	var err error

	v1.Nonce = strconv.FormatInt(nonce, 10)

	// json
	p.JsonEncoded, err = json.Marshal(v1)
	if err != nil {
		return nil, err
	}

	// msgpack
	p.MsgpackEncoded, err = msgpack.Marshal(v1)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
