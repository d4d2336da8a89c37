package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/pitchsight/trackviz/internal/model"
	"github.com/pitchsight/trackviz/internal/pkg/trackerr"
)

type Match struct {
	DB *bun.DB
}

func NewMatch(db *bun.DB) *Match {
	return &Match{DB: db}
}

// GetTeamPair returns the home/away team ids of one match.
func (r *Match) GetTeamPair(ctx context.Context, matchID string) (*model.TeamPair, error) {
	var match model.Match
	err := r.DB.NewSelect().
		Model(&match).
		Column("m.home_team_id", "m.away_team_id").
		Where("m.match_id = ?", matchID).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, trackerr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &model.TeamPair{
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
	}, nil
}

// GetMatchesByTeamName returns every match in which a team whose name contains
// teamName took part, with the Home flag set to 1 when the matched team is the
// home side.
func (r *Match) GetMatchesByTeamName(ctx context.Context, teamName string) ([]*model.Match, error) {
	pattern := "%" + teamName + "%"

	var matches []*model.Match
	err := r.DB.NewSelect().
		Model(&matches).
		ColumnExpr("m.match_id, m.match_date, m.home_team_id, m.away_team_id").
		ColumnExpr("ht.team_name AS home_team_name").
		ColumnExpr("awt.team_name AS away_team_name").
		ColumnExpr("CASE WHEN ht.team_name ILIKE ? THEN 1 ELSE 0 END AS home", pattern).
		Join("JOIN teams AS ht ON ht.team_id = m.home_team_id").
		Join("JOIN teams AS awt ON awt.team_id = m.away_team_id").
		Where("ht.team_name ILIKE ? OR awt.team_name ILIKE ?", pattern, pattern).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
