package model

import (
	"gopkg.in/guregu/null.v3"
)

// PossessionInterval is a maximal time span during which one team owned the ball,
// derived from the ordered match event stream. Intervals are built once per
// calculation and never persisted. The final interval of a match has no end (no
// event follows it), so EndTime and Duration are null.
type PossessionInterval struct {
	MatchID   string      `json:"matchId"`
	TeamID    string      `json:"teamId"`
	StartTime string      `json:"startTime"`
	EndTime   null.String `json:"endTime"`

	// Duration is EndTime minus StartTime in seconds.
	Duration null.Float `json:"duration"`

	// Possession is 1 when TeamID equals the team the calculation was requested
	// for, 0 otherwise.
	Possession int `json:"possession"`
}
