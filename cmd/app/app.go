package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/pitchsight/trackviz/cmd/app/cli"
	"github.com/pitchsight/trackviz/cmd/app/matches"
	"github.com/pitchsight/trackviz/cmd/app/possession"
	"github.com/pitchsight/trackviz/cmd/app/render"
	"github.com/pitchsight/trackviz/cmd/app/tracking"
	"github.com/pitchsight/trackviz/internal/pkg/bininfo"
)

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Run() {
	app := &cli.App{
		Name:        "trackviz",
		Description: "Soccer tracking visualisation backend. Renders player/ball tracking data into video animations and answers ball-possession queries. Built with Go, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			render.Command(depsFn[render.CommandDeps]()),
			tracking.Command(depsFn[tracking.CommandDeps]()),
			matches.Command(depsFn[matches.CommandDeps]()),
			possession.Command(depsFn[possession.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
