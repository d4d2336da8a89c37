package render

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/pitchsight/trackviz/internal/service"
)

type CommandDeps struct {
	fx.In

	AnimationService *service.Animation
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render a tracking animation for a game time window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "game-id",
				Usage:    "game to render",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "start",
				Usage:    "window start timestamp, inclusive",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "end",
				Usage:    "window end timestamp, exclusive",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "period",
				Usage: "restrict the window to one period",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output video path",
				Value: "tracking_animation.mp4",
			},
			&cli.IntFlag{
				Name:  "fps",
				Usage: "frames per second of the output video",
				Value: 25,
			},
			&cli.IntFlag{
				Name:  "density",
				Usage: "synthetic frames inserted between each pair of real samples",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  "no-interpolate",
				Usage: "render only the real samples",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
