package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/model"
)

func sample(playerID, teamID string, frameID, x, y float64) *model.TrackingSample {
	s := &model.TrackingSample{
		PlayerID: playerID,
		FrameID:  frameID,
		X:        x,
		Y:        y,
	}
	if teamID != "" {
		s.TeamID = null.StringFrom(teamID)
	}
	return s
}

func TestSplitPartitions(t *testing.T) {
	teams := &model.TeamPair{HomeTeamID: "home-fc", AwayTeamID: "away-fc"}
	samples := []*model.TrackingSample{
		sample("ball", "", 1, 50, 50),
		sample("p1", "home-fc", 1, 10, 10),
		sample("p2", "home-fc", 1, 20, 20),
		sample("p3", "away-fc", 1, 80, 80),
		sample("ball", "", 2, 51, 50),
	}

	ball, home, away := Split(samples, teams)

	assert.Len(t, ball, 2)
	assert.Len(t, home, 2)
	assert.Len(t, away, 1)

	// disjoint and within the original rows
	seen := map[*model.TrackingSample]int{}
	for _, s := range ball {
		seen[s]++
	}
	for _, s := range home {
		seen[s]++
	}
	for _, s := range away {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "sample %v assigned to more than one subset", s.PlayerID)
		assert.Contains(t, samples, s)
	}
}

func TestSplitDropsUnmatchedTeams(t *testing.T) {
	teams := &model.TeamPair{HomeTeamID: "home-fc", AwayTeamID: "away-fc"}
	samples := []*model.TrackingSample{
		sample("p1", "home-fc", 1, 10, 10),
		sample("referee", "officials", 1, 50, 48),
		sample("p9", "", 1, 60, 40),
	}

	ball, home, away := Split(samples, teams)

	assert.Empty(t, ball)
	assert.Len(t, home, 1)
	assert.Empty(t, away)
}

func TestSplitBallIgnoresTeamMembership(t *testing.T) {
	teams := &model.TeamPair{HomeTeamID: "home-fc", AwayTeamID: "away-fc"}
	ballWithTeam := sample("ball", "home-fc", 1, 50, 50)

	ball, home, away := Split([]*model.TrackingSample{ballWithTeam}, teams)

	assert.Len(t, ball, 1)
	assert.Empty(t, home)
	assert.Empty(t, away)
}
