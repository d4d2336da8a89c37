package possession

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	intervals, err := deps.PossessionService.CalculateByMatch(ctx.Context, ctx.String("match-id"), ctx.String("team-id"))
	if err != nil {
		return errors.Wrap(err, "failed to calculate possession intervals")
	}

	out, err := json.MarshalIndent(intervals, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal possession intervals")
	}

	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
