package play

import "time"

// sessionChangedMsg wakes the screen after the session changed, including
// changes made by its timers.
type sessionChangedMsg struct{}

// animTickMsg drives the reflex countdown and the confetti animation.
type animTickMsg time.Time

const animInterval = 100 * time.Millisecond
