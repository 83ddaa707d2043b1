package events

import "github.com/meower-media/notify/pkg/notify"

type UpdateNotifySettings struct {
	ChatId   int64                     `msgpack:"chat_id"`
	UserId   int64                     `msgpack:"user_id"`
	Settings notify.PeerNotifySettings `msgpack:"settings"`
}

type SaveNotifySettings struct {
	ChatId   int64                          `msgpack:"chat_id"`
	UserId   int64                          `msgpack:"user_id"`
	Settings notify.InputPeerNotifySettings `msgpack:"settings"`
}
