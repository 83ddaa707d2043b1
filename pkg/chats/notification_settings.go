package chats

import "github.com/meower-media/notify/pkg/notify"

// NotificationSettings is how a member's settings are stored. A nil field was
// never set.
type NotificationSettings struct {
	ShowPreviews *bool                     `bson:"show_previews,omitempty" msgpack:"show_previews,omitempty"`
	Silent       *bool                     `bson:"silent,omitempty" msgpack:"silent,omitempty"`
	MutedUntil   *int64                    `bson:"muted_until,omitempty" msgpack:"muted_until,omitempty"`
	Sound        *notify.NotificationSound `bson:"sound,omitempty" msgpack:"sound,omitempty"`
}

// Record converts the stored settings into the record pushed to trackers.
func (s *NotificationSettings) Record() notify.PeerNotifySettings {
	r := notify.PeerNotifySettings{Type: notify.RecordPeerNotifySettings}
	if s.ShowPreviews != nil {
		r.Flags |= notify.FlagShowPreviews
		r.ShowPreviews = *s.ShowPreviews
	}
	if s.Silent != nil {
		r.Flags |= notify.FlagSilent
		r.Silent = *s.Silent
	}
	if s.MutedUntil != nil {
		r.Flags |= notify.FlagMuteUntil
		r.MuteUntil = *s.MutedUntil
	}
	if s.Sound != nil {
		r.Flags |= notify.FlagOtherSound
		r.OtherSound = *s.Sound
	}
	return r
}

// FromInput keeps only the flagged fields of in.
func FromInput(in notify.InputPeerNotifySettings) NotificationSettings {
	var s NotificationSettings
	if in.Has(notify.InputFlagShowPreviews) {
		v := in.ShowPreviews
		s.ShowPreviews = &v
	}
	if in.Has(notify.InputFlagSilent) {
		v := in.Silent
		s.Silent = &v
	}
	if in.Has(notify.InputFlagMuteUntil) {
		v := in.MuteUntil
		s.MutedUntil = &v
	}
	if in.Has(notify.InputFlagSound) {
		v := in.Sound
		s.Sound = &v
	}
	return s
}
