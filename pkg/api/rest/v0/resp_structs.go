package v0_rest

import "github.com/meower-media/notify/pkg/notify"

type BaseResp struct {
	Error bool `json:"error"`
}

type ErrResp struct {
	Error  bool              `json:"error"`
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields,omitempty"`
}

type NotifySettingsResp struct {
	Error    bool                           `json:"error"`
	Known    bool                           `json:"known"`
	Muted    bool                           `json:"muted"`
	Changed  *bool                          `json:"changed,omitempty"`
	Settings notify.InputPeerNotifySettings `json:"settings"`
}
