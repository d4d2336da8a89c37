package matches

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/pitchsight/trackviz/internal/service"
)

type CommandDeps struct {
	fx.In

	MatchService *service.Match
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "matches",
		Usage: "list the matches of a team by (partial) team name",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "team",
				Usage:    "substring to match against team names",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
