package possession

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/model"
	"github.com/pitchsight/trackviz/internal/pkg/trackerr"
)

// Calculate derives ball-possession intervals from an ordered (period, timestamp)
// match event stream. The first event seeds the initial interval; every change of
// the ball-owning team closes the previous interval and opens a new one at the
// change's timestamp. The final interval stays open: no event follows it. Each
// interval's Possession flag is 1 iff its team equals teamID.
//
// An empty event stream is an input error: there is nothing to seed the scan with.
func Calculate(events []*model.MatchEvent, teamID string) ([]*model.PossessionInterval, error) {
	if len(events) == 0 {
		return nil, trackerr.ErrNoEvents
	}

	first := events[0]
	current := first.BallOwningTeam.ValueOrZero()
	intervals := []*model.PossessionInterval{{
		MatchID:   first.MatchID,
		TeamID:    current,
		StartTime: first.Timestamp,
	}}

	for _, ev := range events {
		team := ev.BallOwningTeam.ValueOrZero()
		if team == current {
			continue
		}
		intervals[len(intervals)-1].EndTime = null.StringFrom(ev.Timestamp)
		intervals = append(intervals, &model.PossessionInterval{
			MatchID:   ev.MatchID,
			TeamID:    team,
			StartTime: ev.Timestamp,
		})
		current = team
	}

	for _, interval := range intervals {
		interval.Possession = lo.Ternary(interval.TeamID == teamID, 1, 0)
		if interval.EndTime.Valid {
			interval.Duration = clockSpan(interval.StartTime, interval.EndTime.String)
		}
	}

	return intervals, nil
}

// clockSpan returns end minus start in seconds, or null when either match-clock
// timestamp does not parse.
func clockSpan(start, end string) null.Float {
	startClock, err := model.ParseMatchClock(start)
	if err != nil {
		return null.Float{}
	}
	endClock, err := model.ParseMatchClock(end)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(endClock.Sub(startClock).Seconds())
}
