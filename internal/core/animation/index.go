package animation

import (
	"github.com/ahmetb/go-linq/v3"

	"github.com/pitchsight/trackviz/internal/model"
)

// Index maps a frame id to the player samples observed at exactly that id. Lookup is
// by exact equality, including fractional interpolated ids: the index only lines up
// with an interpolated ball subset when the player subsets were interpolated with
// the same density, which makes synthetic ids a shared pure function of the bounding
// real ids. At mismatched densities lookups between real frames simply miss and the
// team markers appear stale until the next real frame.
type Index map[float64][]*model.TrackingSample

// BuildIndex groups samples by frame id. Built once per animation and read-only
// during rendering.
func BuildIndex(samples []*model.TrackingSample) Index {
	index := make(Index)
	linq.From(samples).
		GroupByT(
			func(s *model.TrackingSample) float64 { return s.FrameID },
			func(s *model.TrackingSample) *model.TrackingSample { return s },
		).
		ForEachT(func(g linq.Group) {
			rows := make([]*model.TrackingSample, 0, len(g.Group))
			for _, row := range g.Group {
				rows = append(rows, row.(*model.TrackingSample))
			}
			index[g.Key.(float64)] = rows
		})
	return index
}
