package service

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/pitchsight/trackviz/internal/model"
	"github.com/pitchsight/trackviz/internal/pkg/trackerr"
	"github.com/pitchsight/trackviz/internal/repo"
)

type Match struct {
	DB        *bun.DB
	MatchRepo *repo.Match
}

func NewMatch(db *bun.DB, matchRepo *repo.Match) *Match {
	return &Match{
		DB:        db,
		MatchRepo: matchRepo,
	}
}

// ListByTeamName returns every match in which a team whose name contains teamName
// took part, with the Home flag marking the matches the team played at home.
func (s *Match) ListByTeamName(ctx context.Context, teamName string) ([]*model.Match, error) {
	if s.DB == nil {
		return nil, trackerr.ErrMissingConnection
	}
	return s.MatchRepo.GetMatchesByTeamName(ctx, teamName)
}
