package notify

import "time"

// Clock reports the current unix time in seconds.
type Clock interface {
	Now() int64
}

type ClockFunc func() int64

func (f ClockFunc) Now() int64 { return f() }

var SystemClock Clock = ClockFunc(func() int64 {
	return time.Now().Unix()
})
