package model

import (
	"time"

	"github.com/pitchsight/trackviz/internal/constant"
)

// ParseMatchClock parses a match-clock timestamp ("HH:MM:SS" time of day).
func ParseMatchClock(s string) (time.Time, error) {
	return time.Parse(constant.MatchClockLayout, s)
}

// FormatMatchClock renders t back into the match-clock representation.
func FormatMatchClock(t time.Time) string {
	return t.Format(constant.MatchClockLayout)
}
