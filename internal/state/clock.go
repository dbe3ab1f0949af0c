package state

import (
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time in milliseconds.
type Clock func() int64

// WallClock reports Unix milliseconds.
func WallClock() int64 {
	return time.Now().UnixMilli()
}

func newSessionID() string {
	return uuid.NewString()
}

func newStrokeID() string {
	return "stroke-" + uuid.NewString()[:8]
}
