package matches

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	found, err := deps.MatchService.ListByTeamName(ctx.Context, ctx.String("team"))
	if err != nil {
		return errors.Wrap(err, "failed to list matches")
	}

	out, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal matches")
	}

	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
