package tracking

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
		Name:  "tracking",
		Usage: "dump the tracking samples of a game as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "game-id",
				Usage:    "game to dump",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "window start timestamp, inclusive; omit together with --end for the full game",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "window end timestamp, exclusive",
			},
			&cli.IntFlag{
				Name:  "period",
				Usage: "restrict the window to one period",
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
