package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type MatchEvent struct {
	bun.BaseModel `bun:"matchevents,alias:me"`

	MatchID         string      `bun:"match_id" json:"matchId"`
	EventID         string      `bun:"event_id,pk" json:"eventId"`
	EventTypeID     null.Int    `bun:"eventtype_id" json:"eventTypeId,omitempty"`
	EventTypeName   null.String `bun:"eventtype_name,scanonly" json:"eventTypeName,omitempty"`
	Result          null.String `bun:"result" json:"result,omitempty"`
	Success         null.Bool   `bun:"success" json:"success,omitempty"`
	PeriodID        null.Int    `bun:"period_id" json:"periodId,omitempty"`
	Timestamp       string      `bun:"timestamp" json:"timestamp"`
	EndTimestamp    null.String `bun:"end_timestamp" json:"endTimestamp,omitempty"`
	BallState       null.String `bun:"ball_state" json:"ballState,omitempty"`
	BallOwningTeam  null.String `bun:"ball_owning_team" json:"ballOwningTeam,omitempty"`
	TeamID          null.String `bun:"team_id" json:"teamId,omitempty"`
	PlayerID        null.String `bun:"player_id" json:"playerId,omitempty"`
	X               null.Float  `bun:"x" json:"x,omitempty"`
	Y               null.Float  `bun:"y" json:"y,omitempty"`
	EndCoordinatesX null.Float  `bun:"end_coordinates_x" json:"endCoordinatesX,omitempty"`
	EndCoordinatesY null.Float  `bun:"end_coordinates_y" json:"endCoordinatesY,omitempty"`
	ReceiverPlayer  null.String `bun:"receiver_player_id" json:"receiverPlayerId,omitempty"`
	ReceiverTeamID  null.String `bun:"receiver_team_id,scanonly" json:"receiverTeamId,omitempty"`
}
