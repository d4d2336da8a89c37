package tracking

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/pitchsight/trackviz/internal/model"
)

// Interpolate densifies a subset of tracking samples by inserting density synthetic
// samples, evenly spaced, between each pair of adjacent real samples. Subsets that
// span multiple entities are interpolated per entity, each on its own timeline, and
// concatenated in first-appearance order. Ball, home and away subsets of one
// animation must be interpolated with the same density: the synthetic frame ids are
// a pure function of the bounding ids and density, so equal densities keep the
// fractional ids of the three subsets exactly aligned.
func Interpolate(samples []*model.TrackingSample, density int) []*model.TrackingSample {
	if len(samples) <= 1 {
		return samples
	}
	if density < 0 {
		density = 0
	}

	entities := lo.Uniq(lo.Map(samples, func(s *model.TrackingSample, _ int) string {
		return s.PlayerID
	}))
	if len(entities) == 1 {
		return interpolateEntity(samples, density)
	}

	groups := lo.GroupBy(samples, func(s *model.TrackingSample) string {
		return s.PlayerID
	})
	out := make([]*model.TrackingSample, 0, len(samples)+(len(samples)-len(entities))*density)
	for _, entity := range entities {
		out = append(out, interpolateEntity(groups[entity], density)...)
	}
	return out
}

// interpolateEntity densifies the sample sequence of one entity. Input order is not
// trusted: the sequence is sorted by frame id first. The output slice is pre-sized
// to n + (n-1)*density rows and built in a single pass.
func interpolateEntity(samples []*model.TrackingSample, density int) []*model.TrackingSample {
	if len(samples) <= 1 {
		return samples
	}

	sorted := make([]*model.TrackingSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FrameID < sorted[j].FrameID
	})

	out := make([]*model.TrackingSample, 0, len(sorted)+(len(sorted)-1)*density)
	for i := 0; i < len(sorted)-1; i++ {
		cur, next := sorted[i], sorted[i+1]
		out = append(out, cur)
		for j := 1; j <= density; j++ {
			alpha := float64(j) / float64(density+1)
			synth := *cur
			synth.X = cur.X + alpha*(next.X-cur.X)
			synth.Y = cur.Y + alpha*(next.Y-cur.Y)
			synth.FrameID = cur.FrameID + alpha*(next.FrameID-cur.FrameID)
			synth.Timestamp = lerpClock(cur.Timestamp, next.Timestamp, alpha)
			out = append(out, &synth)
		}
	}
	return append(out, sorted[len(sorted)-1])
}

// lerpClock interpolates between two match-clock timestamps. When either timestamp
// fails to parse, the current one is returned verbatim; interpolation never fails.
func lerpClock(cur, next string, alpha float64) string {
	curClock, err := model.ParseMatchClock(cur)
	if err != nil {
		return cur
	}
	nextClock, err := model.ParseMatchClock(next)
	if err != nil {
		return cur
	}
	elapsed := nextClock.Sub(curClock).Seconds() * alpha
	return model.FormatMatchClock(curClock.Add(time.Duration(elapsed * float64(time.Second))))
}
