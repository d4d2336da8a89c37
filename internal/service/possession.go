package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/pitchsight/trackviz/internal/core/possession"
	"github.com/pitchsight/trackviz/internal/model"
	"github.com/pitchsight/trackviz/internal/pkg/trackerr"
	"github.com/pitchsight/trackviz/internal/repo"
)

type Possession struct {
	DB             *bun.DB
	MatchEventRepo *repo.MatchEvent
}

func NewPossession(db *bun.DB, matchEventRepo *repo.MatchEvent) *Possession {
	return &Possession{
		DB:             db,
		MatchEventRepo: matchEventRepo,
	}
}

// CalculateByMatch derives the ball-possession intervals of a match, flagging each
// interval against teamID. An empty event stream surfaces as a typed error.
func (s *Possession) CalculateByMatch(ctx context.Context, matchID, teamID string) ([]*model.PossessionInterval, error) {
	if s.DB == nil {
		return nil, trackerr.ErrMissingConnection
	}

	events, err := s.MatchEventRepo.GetEventsByMatch(ctx, matchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch match events")
	}

	return possession.Calculate(events, teamID)
}
