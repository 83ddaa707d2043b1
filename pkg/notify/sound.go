package notify

type SoundType int8

const (
	SoundDefault  SoundType = 0
	SoundNone     SoundType = 1
	SoundLocal    SoundType = 2
	SoundRingtone SoundType = 3
)

// NotificationSound is the wire shape of a sound choice.
// Title and Data are only meaningful for SoundLocal, Id only for SoundRingtone.
type NotificationSound struct {
	Type  SoundType `bson:"type" json:"type" msgpack:"type"`
	Title string    `bson:"title,omitempty" json:"title,omitempty" msgpack:"title,omitempty"`
	Data  string    `bson:"data,omitempty" json:"data,omitempty" msgpack:"data,omitempty"`
	Id    int64     `bson:"id,omitempty" json:"id,omitempty" msgpack:"id,omitempty"`
}

// NotifySound is a decoded sound choice. The zero value is the default sound.
type NotifySound struct {
	kind  SoundType
	title string
	data  string
	id    int64
}

func DefaultSound() NotifySound {
	return NotifySound{}
}

func NoSound() NotifySound {
	return NotifySound{kind: SoundNone}
}

func LocalSound(title string, data string) NotifySound {
	return NotifySound{kind: SoundLocal, title: title, data: data}
}

func RingtoneSound(id int64) NotifySound {
	return NotifySound{kind: SoundRingtone, id: id}
}

func (s NotifySound) Type() SoundType { return s.kind }
func (s NotifySound) Title() string { return s.title }
func (s NotifySound) Data() string { return s.data }
func (s NotifySound) Id() int64 { return s.id }

func DecodeSound(w NotificationSound) NotifySound {
	switch w.Type {
	case SoundNone:
		return NoSound()
	case SoundLocal:
		return LocalSound(w.Title, w.Data)
	case SoundRingtone:
		return RingtoneSound(w.Id)
	default:
		return DefaultSound()
	}
}

// EncodeSound converts an optional sound back to its wire shape, nil meaning
// "inherit the default". It encodes by variant, so RingtoneSound(0) and
// LocalSound("", data) keep their own tags instead of falling back to default.
func EncodeSound(s *NotifySound) NotificationSound {
	if s == nil {
		return NotificationSound{Type: SoundDefault}
	}
	switch s.kind {
	case SoundNone:
		return NotificationSound{Type: SoundNone}
	case SoundRingtone:
		return NotificationSound{Type: SoundRingtone, Id: s.id}
	case SoundLocal:
		return NotificationSound{Type: SoundLocal, Title: s.title, Data: s.data}
	default:
		return NotificationSound{Type: SoundDefault}
	}
}
