package animation

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/pitchsight/trackviz/internal/model"
)

// PeriodPlaceholder is displayed when a frame carries no period id.
const PeriodPlaceholder = "N/A"

// Assembler drives a Renderer frame by frame. The ball subset defines the animation:
// one rendered frame per ball row, so its row count and ordering set the frame count
// and pacing.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Animate renders one frame per ball sample. The home and away subsets are indexed
// by frame id once up front; each frame looks up its exact frame id and falls back
// to an empty marker set on a miss. An empty ball subset is a no-op.
func (a *Assembler) Animate(ball, home, away []*model.TrackingSample, r Renderer) error {
	if len(ball) == 0 {
		log.Warn().Msg("no ball samples to animate, skipping render")
		return nil
	}

	homeIndex := BuildIndex(home)
	awayIndex := BuildIndex(away)

	title := fmt.Sprintf("Match Analysis: %s to %s", ball[0].Timestamp, ball[len(ball)-1].Timestamp)
	if err := r.Begin(title, len(ball)); err != nil {
		return errors.Wrap(err, "failed to draw pitch background")
	}

	for i, sample := range ball {
		update := FrameUpdate{
			Ball:   Point{X: sample.X, Y: sample.Y},
			Home:   points(homeIndex[sample.FrameID]),
			Away:   points(awayIndex[sample.FrameID]),
			Clock:  sample.Timestamp,
			Period: PeriodPlaceholder,
		}
		if sample.PeriodID.Valid {
			update.Period = strconv.FormatInt(sample.PeriodID.Int64, 10)
		}
		if err := r.Frame(update); err != nil {
			return errors.Wrapf(err, "failed to render frame %d", i)
		}
	}

	return errors.Wrap(r.Finish(), "failed to finalize animation")
}

func points(samples []*model.TrackingSample) []Point {
	out := make([]Point, 0, len(samples))
	for _, s := range samples {
		out = append(out, Point{X: s.X, Y: s.Y})
	}
	return out
}
