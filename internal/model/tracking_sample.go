package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/constant"
)

// TrackingSample is one positional observation of a single entity (a player or the
// ball) at a sampling instant. FrameID is a float64 because frame interpolation
// introduces fractional frame ids; real samples carry integral values.
type TrackingSample struct {
	bun.BaseModel `bun:"player_tracking,alias:pt"`

	GameID       string      `bun:"game_id" json:"gameId"`
	FrameID      float64     `bun:"frame_id" json:"frameId"`
	Timestamp    string      `bun:"timestamp" json:"timestamp"`
	PeriodID     null.Int    `bun:"period_id" json:"periodId,omitempty"`
	PlayerID     string      `bun:"player_id" json:"playerId"`
	TeamID       null.String `bun:"team_id,scanonly" json:"teamId,omitempty"`
	JerseyNumber null.Int    `bun:"jersey_number,scanonly" json:"jerseyNumber,omitempty"`
	PlayerName   null.String `bun:"player_name,scanonly" json:"playerName,omitempty"`
	X            float64     `bun:"x" json:"x"`
	Y            float64     `bun:"y" json:"y"`
}

// IsBall reports whether the sample belongs to the ball rather than a player.
func (s *TrackingSample) IsBall() bool {
	return s.PlayerID == constant.BallEntityID
}
