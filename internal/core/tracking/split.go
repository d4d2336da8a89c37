package tracking

import (
	"github.com/samber/lo"

	"github.com/pitchsight/trackviz/internal/model"
)

// Split partitions tracking samples into the ball, home-team and away-team entity
// subsets. A sample is the ball iff its player id is the ball sentinel; otherwise it
// goes to the subset whose team id it carries. Samples matching neither team (e.g.
// referees or unresolved players) are dropped without a warning.
func Split(samples []*model.TrackingSample, teams *model.TeamPair) (ball, home, away []*model.TrackingSample) {
	ball = lo.Filter(samples, func(s *model.TrackingSample, _ int) bool {
		return s.IsBall()
	})
	home = lo.Filter(samples, func(s *model.TrackingSample, _ int) bool {
		return !s.IsBall() && s.TeamID.Valid && s.TeamID.String == teams.HomeTeamID
	})
	away = lo.Filter(samples, func(s *model.TrackingSample, _ int) bool {
		return !s.IsBall() && s.TeamID.Valid && s.TeamID.String == teams.AwayTeamID
	})
	return ball, home, away
}
