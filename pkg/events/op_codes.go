package events

const (
	OpUpdateNotifySettings uint8 = 0 // remote -> us
	OpSaveNotifySettings   uint8 = 1 // us -> remote
)
