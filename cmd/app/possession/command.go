package possession

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/pitchsight/trackviz/internal/service"
)

type CommandDeps struct {
	fx.In

	PossessionService *service.Possession
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "possession",
		Usage: "calculate ball-possession intervals for a match",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "match-id",
				Usage:    "match to calculate possession for",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "team-id",
				Usage:    "team whose possession flag to compute",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
