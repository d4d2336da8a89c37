package repo

import (
	"context"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/model"
)

type Tracking struct {
	DB *bun.DB
}

func NewTracking(db *bun.DB) *Tracking {
	return &Tracking{DB: db}
}

// GetSamplesByGame returns every tracking sample of a game, joined with player
// identity and team membership.
func (r *Tracking) GetSamplesByGame(ctx context.Context, gameID string) ([]*model.TrackingSample, error) {
	var samples []*model.TrackingSample
	err := r.DB.NewSelect().
		Model(&samples).
		ColumnExpr("pt.*").
		ColumnExpr("p.team_id AS team_id").
		ColumnExpr("p.jersey_number AS jersey_number").
		ColumnExpr("p.player_name AS player_name").
		Join("LEFT JOIN players AS p ON p.player_id = pt.player_id").
		Where("pt.game_id = ?", gameID).
		Order("pt.timestamp ASC", "pt.frame_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// GetSamplesByGameAndTimeRange returns the tracking samples of a game within the
// half-open window [startTime, endTime), optionally restricted to one period.
func (r *Tracking) GetSamplesByGameAndTimeRange(ctx context.Context, gameID, startTime, endTime string, periodID null.Int) ([]*model.TrackingSample, error) {
	var samples []*model.TrackingSample
	q := r.DB.NewSelect().
		Model(&samples).
		ColumnExpr("pt.*").
		ColumnExpr("p.team_id AS team_id").
		ColumnExpr("p.jersey_number AS jersey_number").
		ColumnExpr("p.player_name AS player_name").
		Join("LEFT JOIN players AS p ON p.player_id = pt.player_id").
		Where("pt.game_id = ?", gameID).
		Where("pt.timestamp >= ?", startTime).
		Where("pt.timestamp < ?", endTime)
	if periodID.Valid {
		q = q.Where("pt.period_id = ?", periodID.Int64)
	}
	err := q.
		Order("pt.timestamp ASC", "pt.frame_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return samples, nil
}
