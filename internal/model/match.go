package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Match struct {
	bun.BaseModel `bun:"matches,alias:m"`

	MatchID      string      `bun:"match_id,pk" json:"matchId"`
	MatchDate    null.String `bun:"match_date" json:"matchDate,omitempty"`
	HomeTeamID   string      `bun:"home_team_id" json:"homeTeamId"`
	HomeTeamName string      `bun:"home_team_name,scanonly" json:"homeTeamName"`
	AwayTeamID   string      `bun:"away_team_id" json:"awayTeamId"`
	AwayTeamName string      `bun:"away_team_name,scanonly" json:"awayTeamName"`

	// Home is 1 when the searched team is the home side, 0 otherwise. Only populated
	// by team-name match lookups.
	Home int `bun:"home,scanonly" json:"home"`
}

// TeamPair is the home/away team id pair of one match, used to partition tracking
// samples into entity subsets.
type TeamPair struct {
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}
