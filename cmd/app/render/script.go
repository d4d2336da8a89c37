package render

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/service"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	req := service.RenderRequest{
		GameID:    ctx.String("game-id"),
		StartTime: ctx.String("start"),
		EndTime:   ctx.String("end"),
		RenderOptions: service.RenderOptions{
			OutputPath:  ctx.String("out"),
			FPS:         ctx.Int("fps"),
			Interpolate: !ctx.Bool("no-interpolate"),
			Density:     ctx.Int("density"),
		},
	}
	if ctx.IsSet("period") {
		req.PeriodID = null.IntFrom(int64(ctx.Int("period")))
	}

	log.Info().
		Str("gameId", req.GameID).
		Str("startTime", req.StartTime).
		Str("endTime", req.EndTime).
		Msg("rendering animation")

	path := deps.AnimationService.RenderFromDatabase(ctx.Context, req)
	if !path.Valid {
		return errors.New("no animation produced; see logs for details")
	}

	log.Info().Str("path", path.String).Msg("animation saved")
	return nil
}
