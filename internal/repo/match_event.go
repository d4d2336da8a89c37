package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pitchsight/trackviz/internal/model"
)

type MatchEvent struct {
	DB *bun.DB
}

func NewMatchEvent(db *bun.DB) *MatchEvent {
	return &MatchEvent{DB: db}
}

// GetEventsByMatch returns the events of one match with the event type name and the
// receiving player's team resolved, ordered by period then timestamp. The ordering
// is what the possession calculator's change-point scan relies on.
func (r *MatchEvent) GetEventsByMatch(ctx context.Context, matchID string) ([]*model.MatchEvent, error) {
	var events []*model.MatchEvent
	err := r.DB.NewSelect().
		Model(&events).
		ColumnExpr("me.*").
		ColumnExpr("et.name AS eventtype_name").
		ColumnExpr("rp.team_id AS receiver_team_id").
		Join("LEFT JOIN players AS rp ON rp.player_id = me.receiver_player_id").
		Join("LEFT JOIN eventtypes AS et ON et.eventtype_id = me.eventtype_id").
		Where("me.match_id = ?", matchID).
		Order("me.period_id ASC", "me.timestamp ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}
