package tracking

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/model"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	var samples []*model.TrackingSample
	var err error

	if ctx.IsSet("start") || ctx.IsSet("end") {
		var periodID null.Int
		if ctx.IsSet("period") {
			periodID = null.IntFrom(int64(ctx.Int("period")))
		}
		samples, err = deps.AnimationService.LoadTrackingData(
			ctx.Context, ctx.String("game-id"), ctx.String("start"), ctx.String("end"), periodID)
	} else {
		samples, err = deps.AnimationService.LoadGameTracking(ctx.Context, ctx.String("game-id"))
	}
	if err != nil {
		return errors.Wrap(err, "failed to load tracking samples")
	}

	out, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal tracking samples")
	}

	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
