package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/core/animation"
	"github.com/pitchsight/trackviz/internal/core/tracking"
	"github.com/pitchsight/trackviz/internal/model"
	"github.com/pitchsight/trackviz/internal/pkg/pitch"
	"github.com/pitchsight/trackviz/internal/pkg/trackerr"
	"github.com/pitchsight/trackviz/internal/repo"
)

// RenderOptions controls how a set of entity subsets becomes a video.
type RenderOptions struct {
	OutputPath  string
	FPS         int
	Interpolate bool

	// Density is the count of synthetic frames inserted between adjacent real
	// samples. The same density is applied to all three subsets so their frame ids
	// stay aligned.
	Density int
}

// RenderRequest is the one-step database-to-video request. StartTime/EndTime form a
// half-open window [StartTime, EndTime).
type RenderRequest struct {
	GameID    string
	StartTime string
	EndTime   string
	PeriodID  null.Int

	RenderOptions
}

type Animation struct {
	DB           *bun.DB
	TrackingRepo *repo.Tracking
	MatchRepo    *repo.Match

	// NewRenderer builds the drawing/encoding backend for one render.
	NewRenderer func(path string, fps int) animation.Renderer
}

func NewAnimation(db *bun.DB, trackingRepo *repo.Tracking, matchRepo *repo.Match) *Animation {
	return &Animation{
		DB:           db,
		TrackingRepo: trackingRepo,
		MatchRepo:    matchRepo,
		NewRenderer:  pitch.NewRenderer,
	}
}

// LoadTrackingData fetches the samples of a game time window and reports data
// quality: an empty result set and gaps in the frame id sequence are warnings, not
// errors.
func (s *Animation) LoadTrackingData(ctx context.Context, gameID, startTime, endTime string, periodID null.Int) ([]*model.TrackingSample, error) {
	if s.DB == nil {
		return nil, trackerr.ErrMissingConnection
	}

	samples, err := s.TrackingRepo.GetSamplesByGameAndTimeRange(ctx, gameID, startTime, endTime, periodID)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		log.Warn().
			Str("gameId", gameID).
			Str("startTime", startTime).
			Str("endTime", endTime).
			Msg("no tracking data found for the specified time range and game")
		return samples, nil
	}

	frames := s.reportFrameGaps(samples)
	log.Info().
		Str("gameId", gameID).
		Int("rows", len(samples)).
		Int("frames", frames).
		Msg("loaded tracking data")
	return samples, nil
}

// LoadGameTracking fetches every tracking sample of a game, without a time window.
func (s *Animation) LoadGameTracking(ctx context.Context, gameID string) ([]*model.TrackingSample, error) {
	if s.DB == nil {
		return nil, trackerr.ErrMissingConnection
	}
	return s.TrackingRepo.GetSamplesByGame(ctx, gameID)
}

// LoadTeamPair fetches the home/away team ids of a match.
func (s *Animation) LoadTeamPair(ctx context.Context, matchID string) (*model.TeamPair, error) {
	if s.DB == nil {
		return nil, trackerr.ErrMissingConnection
	}
	return s.MatchRepo.GetTeamPair(ctx, matchID)
}

// RenderFromDatabase is the one-step entry point: load a game's time window, split
// it into entity subsets and render the animation. Failures never propagate: they
// are logged with their stack and an absent path is returned, meaning no file was
// produced.
func (s *Animation) RenderFromDatabase(ctx context.Context, req RenderRequest) null.String {
	samples, err := s.LoadTrackingData(ctx, req.GameID, req.StartTime, req.EndTime, req.PeriodID)
	if err != nil {
		log.Error().Stack().Err(err).Msg("failed to load tracking data")
		return null.String{}
	}
	if len(samples) == 0 {
		log.Warn().Msg("no data to animate")
		return null.String{}
	}

	teams, err := s.LoadTeamPair(ctx, req.GameID)
	if err != nil {
		log.Error().Stack().Err(err).Str("matchId", req.GameID).Msg("failed to load team data")
		return null.String{}
	}

	ball, home, away := tracking.Split(samples, teams)
	log.Info().
		Int("ballFrames", len(ball)).
		Int("homeRows", len(home)).
		Int("awayRows", len(away)).
		Msg("split tracking data")

	return s.RenderFromSubsets(ctx, ball, home, away, req.RenderOptions)
}

// RenderFromSubsets renders already-materialized ball/home/away subsets. Same
// failure policy as RenderFromDatabase: an absent path means no file was produced.
func (s *Animation) RenderFromSubsets(_ context.Context, ball, home, away []*model.TrackingSample, opts RenderOptions) null.String {
	if opts.Interpolate {
		ball = tracking.Interpolate(ball, opts.Density)
		home = tracking.Interpolate(home, opts.Density)
		away = tracking.Interpolate(away, opts.Density)
		log.Info().
			Int("density", opts.Density).
			Int("ballFrames", len(ball)).
			Int("homeRows", len(home)).
			Int("awayRows", len(away)).
			Msg("interpolated entity subsets")
	}

	if len(ball) == 0 {
		log.Warn().Msg("no ball frames to animate, no animation produced")
		return null.String{}
	}

	renderer := s.NewRenderer(opts.OutputPath, opts.FPS)
	if err := animation.NewAssembler().Animate(ball, home, away, renderer); err != nil {
		log.Error().Stack().Err(err).Str("path", opts.OutputPath).Msg("failed to render animation")
		return null.String{}
	}

	log.Info().Str("path", opts.OutputPath).Int("fps", opts.FPS).Msg("animation saved")
	return null.StringFrom(opts.OutputPath)
}

// reportFrameGaps warns when the frame id sequence is non-contiguous and returns
// the distinct frame count.
func (s *Animation) reportFrameGaps(samples []*model.TrackingSample) int {
	frames := lo.Uniq(lo.Map(samples, func(sm *model.TrackingSample, _ int) float64 {
		return sm.FrameID
	}))
	sort.Float64s(frames)

	gaps := 0
	for i := 1; i < len(frames); i++ {
		if frames[i]-frames[i-1] > 1 {
			gaps++
		}
	}
	if gaps > 0 {
		log.Warn().
			Int("gaps", gaps).
			Float64("firstFrame", frames[0]).
			Float64("lastFrame", frames[len(frames)-1]).
			Msg("found gaps in frame ids")
	}
	return len(frames)
}
