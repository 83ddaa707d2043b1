package notify

type optional[T comparable] struct {
	value T
	set   bool
}

func some[T comparable](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

func (o optional[T]) or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// fields is compared as a whole, so a merge either replaces all four or
// nothing at all.
type fields struct {
	mute         optional[int64]
	sound        optional[NotifySound]
	showPreviews optional[bool]
	silent       optional[bool]
}

// settingsValue holds the settings of a peer whose remote record was
// non-empty at least once.
type settingsValue struct {
	fields fields
}

func newSettingsValue(r *PeerNotifySettings) *settingsValue {
	v := &settingsValue{}
	v.mergeRemote(r)
	return v
}

// mergeRemote takes the flagged fields of r. Unflagged fields keep their
// current value.
func (v *settingsValue) mergeRemote(r *PeerNotifySettings) bool {
	next := v.fields
	if r.Has(FlagMuteUntil) {
		next.mute = some(r.MuteUntil)
	}
	if r.Has(FlagOtherSound) {
		next.sound = some(DecodeSound(r.OtherSound))
	}
	if r.Has(FlagShowPreviews) {
		next.showPreviews = some(r.ShowPreviews)
	}
	if r.Has(FlagSilent) {
		next.silent = some(r.Silent)
	}
	return v.merge(next)
}

// mergeLocal applies a user edit. A provided mute always replaces the stored
// one, even when the stored mute lasts longer. Sound and previews are left
// alone.
func (v *settingsValue) mergeLocal(clock Clock, edit LocalEdit) bool {
	next := v.fields
	if edit.MuteFor != nil {
		next.mute = some(muteUntilFor(clock.Now(), *edit.MuteFor))
	}
	if edit.SilentPosts != nil {
		next.silent = some(*edit.SilentPosts)
	}
	return v.merge(next)
}

func (v *settingsValue) merge(next fields) bool {
	if v.fields == next {
		return false
	}
	v.fields = next
	return true
}

func (v *settingsValue) muteUntil() (int64, bool) {
	return v.fields.mute.get()
}

func (v *settingsValue) silentPosts() (bool, bool) {
	return v.fields.silent.get()
}

func (v *settingsValue) showPreviews() (bool, bool) {
	return v.fields.showPreviews.get()
}

func (v *settingsValue) sound() (NotifySound, bool) {
	return v.fields.sound.get()
}

func (v *settingsValue) serialize() InputPeerNotifySettings {
	var flags uint32
	if v.fields.mute.set {
		flags |= InputFlagMuteUntil
	}
	if v.fields.sound.set {
		flags |= InputFlagSound
	}
	if v.fields.silent.set {
		flags |= InputFlagSilent
	}
	if v.fields.showPreviews.set {
		flags |= InputFlagShowPreviews
	}

	var sound *NotifySound
	if s, ok := v.fields.sound.get(); ok {
		sound = &s
	}

	return InputPeerNotifySettings{
		Flags:        flags,
		ShowPreviews: v.fields.showPreviews.or(true),
		Silent:       v.fields.silent.or(false),
		MuteUntil:    v.fields.mute.or(0),
		Sound:        EncodeSound(sound),
	}
}

// muteUntilFor turns a relative mute into an absolute one. Zero or less
// means "not muted".
func muteUntilFor(now int64, seconds int) int64 {
	if seconds > 0 {
		return now + int64(seconds)
	}
	return 0
}
