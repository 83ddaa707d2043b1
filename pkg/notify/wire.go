package notify

import "fmt"

type RecordType uint32

// Only RecordPeerNotifySettings is a valid settings push.
const (
	RecordUnknown            RecordType = 0
	RecordPeerNotifySettings RecordType = 1
)

// PeerNotifySettings flag bits
const (
	FlagShowPreviews uint32 = 1 << 0
	FlagSilent       uint32 = 1 << 1
	FlagMuteUntil    uint32 = 1 << 2
	FlagIosSound     uint32 = 1 << 3
	FlagAndroidSound uint32 = 1 << 4
	FlagOtherSound   uint32 = 1 << 5
)

// InputPeerNotifySettings flag bits
const (
	InputFlagShowPreviews uint32 = 1 << 0
	InputFlagSilent       uint32 = 1 << 1
	InputFlagMuteUntil    uint32 = 1 << 2
	InputFlagSound        uint32 = 1 << 3
)

// PeerNotifySettings is a settings push from the remote side. A field is
// only meaningful when its flag bit is set.
type PeerNotifySettings struct {
	Type         RecordType        `bson:"type" json:"type" msgpack:"type"`
	Flags        uint32            `bson:"flags" json:"flags" msgpack:"flags"`
	ShowPreviews bool              `bson:"show_previews" json:"show_previews" msgpack:"show_previews"`
	Silent       bool              `bson:"silent" json:"silent" msgpack:"silent"`
	MuteUntil    int64             `bson:"mute_until" json:"mute_until" msgpack:"mute_until"`
	IosSound     NotificationSound `bson:"ios_sound" json:"ios_sound" msgpack:"ios_sound"`
	AndroidSound NotificationSound `bson:"android_sound" json:"android_sound" msgpack:"android_sound"`
	OtherSound   NotificationSound `bson:"other_sound" json:"other_sound" msgpack:"other_sound"`
}

func (r *PeerNotifySettings) Has(flag uint32) bool {
	return r.Flags&flag != 0
}

func (r *PeerNotifySettings) Validate() error {
	if r.Type != RecordPeerNotifySettings {
		return fmt.Errorf("%w: %d", ErrUnexpectedRecord, r.Type)
	}
	return nil
}

// InputPeerNotifySettings is what gets pushed back upstream. Unflagged fields
// hold neutral values and must be ignored by readers.
type InputPeerNotifySettings struct {
	Flags        uint32            `bson:"flags" json:"flags" msgpack:"flags"`
	ShowPreviews bool              `bson:"show_previews" json:"show_previews" msgpack:"show_previews"`
	Silent       bool              `bson:"silent" json:"silent" msgpack:"silent"`
	MuteUntil    int64             `bson:"mute_until" json:"mute_until" msgpack:"mute_until"`
	Sound        NotificationSound `bson:"sound" json:"sound" msgpack:"sound"`
}

func (r *InputPeerNotifySettings) Has(flag uint32) bool {
	return r.Flags&flag != 0
}

func defaultInputSettings() InputPeerNotifySettings {
	return InputPeerNotifySettings{
		Sound: NotificationSound{Type: SoundDefault},
	}
}
