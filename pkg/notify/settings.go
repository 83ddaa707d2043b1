// Package notify reconciles per-peer notification settings received from the
// server with edits made locally.
package notify

// LocalEdit is a partial change requested by the user. Nil fields are left
// untouched.
type LocalEdit struct {
	MuteFor     *int  `json:"mute_for,omitempty" msgpack:"mute_for,omitempty"` // seconds, 0 to unmute
	SilentPosts *bool `json:"silent,omitempty" msgpack:"silent,omitempty"`
}

func (e LocalEdit) empty() bool {
	return e.MuteFor == nil && e.SilentPosts == nil
}

// settingsState is one of: nil (never fetched), knownEmpty, *settingsValue.
type settingsState interface {
	isSettingsState()
}

type knownEmpty struct{}

func (knownEmpty) isSettingsState() {}
func (*settingsValue) isSettingsState() {}

// Settings tracks the notification settings of one peer. The zero value is
// ready to use and reads the system clock.
//
// Settings is not safe for concurrent use; see Cache.
type Settings struct {
	clock Clock
	state settingsState
}

func NewSettings(clock Clock) *Settings {
	return &Settings{clock: clock}
}

func (s *Settings) now() int64 {
	if s.clock == nil {
		return SystemClock.Now()
	}
	return s.clock.Now()
}

func (s *Settings) value() *settingsValue {
	v, _ := s.state.(*settingsValue)
	return v
}

// ApplyRemote merges a settings push and reports whether anything observable
// changed. It panics if r is not a RecordPeerNotifySettings.
func (s *Settings) ApplyRemote(r PeerNotifySettings) bool {
	if err := r.Validate(); err != nil {
		panic(err)
	}

	if r.Flags == 0 {
		if _, ok := s.state.(knownEmpty); ok {
			return false
		}
		s.state = knownEmpty{}
		return true
	}

	if v := s.value(); v != nil {
		return v.mergeRemote(&r)
	}
	s.state = newSettingsValue(&r)
	return true
}

// ApplyLocal merges a user edit and reports whether anything observable
// changed.
func (s *Settings) ApplyLocal(edit LocalEdit) bool {
	if edit.empty() {
		return false
	}
	if v := s.value(); v != nil {
		return v.mergeLocal(ClockFunc(s.now), edit)
	}

	// No value yet: build one the same way a remote push would.
	r := PeerNotifySettings{Type: RecordPeerNotifySettings}
	if edit.MuteFor != nil {
		r.Flags |= FlagMuteUntil
		r.MuteUntil = muteUntilFor(s.now(), *edit.MuteFor)
	}
	if edit.SilentPosts != nil {
		r.Flags |= FlagSilent
		r.Silent = *edit.SilentPosts
	}
	return s.ApplyRemote(r)
}

func (s *Settings) IsUnknown() bool {
	return s.state == nil
}

func (s *Settings) MuteUntil() (int64, bool) {
	if v := s.value(); v != nil {
		return v.muteUntil()
	}
	return 0, false
}

// IsMuted reports whether the peer is muted at the given unix time.
func (s *Settings) IsMuted(now int64) bool {
	until, ok := s.MuteUntil()
	return ok && until > now
}

func (s *Settings) SilentPosts() (bool, bool) {
	if v := s.value(); v != nil {
		return v.silentPosts()
	}
	return false, false
}

func (s *Settings) ShowPreviews() (bool, bool) {
	if v := s.value(); v != nil {
		return v.showPreviews()
	}
	return false, false
}

func (s *Settings) Sound() (NotifySound, bool) {
	if v := s.value(); v != nil {
		return v.sound()
	}
	return NotifySound{}, false
}

// Serialize returns the record to push upstream. Without a value this is the
// all-default record with no flags set.
func (s *Settings) Serialize() InputPeerNotifySettings {
	if v := s.value(); v != nil {
		return v.serialize()
	}
	return defaultInputSettings()
}
