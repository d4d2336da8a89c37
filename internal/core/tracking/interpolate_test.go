package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchsight/trackviz/internal/model"
)

func tracked(playerID string, frameID, x, y float64, timestamp string) *model.TrackingSample {
	return &model.TrackingSample{
		PlayerID:  playerID,
		FrameID:   frameID,
		X:         x,
		Y:         y,
		Timestamp: timestamp,
	}
}

func TestInterpolateRowCount(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("ball", 1, 0, 0, "00:00:01"),
		tracked("ball", 2, 10, 10, "00:00:02"),
		tracked("ball", 3, 20, 20, "00:00:03"),
		tracked("ball", 5, 40, 40, "00:00:05"),
	}

	for _, density := range []int{1, 2, 5} {
		out := Interpolate(samples, density)
		n := len(samples)
		assert.Len(t, out, n+(n-1)*density, "density %d", density)
	}
}

func TestInterpolatePreservesOriginals(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("ball", 1, 0, 0, "00:00:01"),
		tracked("ball", 3, 30, 60, "00:00:03"),
	}

	out := Interpolate(samples, 3)
	require.Len(t, out, 5)

	assert.Same(t, samples[0], out[0])
	assert.Same(t, samples[1], out[4])

	for _, synth := range out[1:4] {
		assert.Greater(t, synth.FrameID, 1.0)
		assert.Less(t, synth.FrameID, 3.0)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("ball", 1, 0, 0, "00:00:00"),
		tracked("ball", 3, 10, 20, "00:00:02"),
	}

	out := Interpolate(samples, 1)
	require.Len(t, out, 3)

	mid := out[1]
	assert.Equal(t, 2.0, mid.FrameID)
	assert.Equal(t, 5.0, mid.X)
	assert.Equal(t, 10.0, mid.Y)
	assert.Equal(t, "00:00:01", mid.Timestamp)
}

func TestInterpolateShortSubsetsUnchanged(t *testing.T) {
	var empty []*model.TrackingSample
	assert.Empty(t, Interpolate(empty, 5))

	single := []*model.TrackingSample{tracked("ball", 1, 0, 0, "00:00:01")}
	out := Interpolate(single, 5)
	require.Len(t, out, 1)
	assert.Same(t, single[0], out[0])
}

func TestInterpolateSortsByFrameID(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("ball", 3, 20, 20, "00:00:03"),
		tracked("ball", 1, 0, 0, "00:00:01"),
		tracked("ball", 2, 10, 10, "00:00:02"),
	}

	out := Interpolate(samples, 1)
	require.Len(t, out, 5)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].FrameID, out[i-1].FrameID)
	}
}

func TestInterpolateMultipleEntitiesIndependently(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("p1", 1, 0, 0, "00:00:01"),
		tracked("p2", 1, 100, 100, "00:00:01"),
		tracked("p1", 3, 20, 20, "00:00:03"),
		tracked("p2", 3, 80, 80, "00:00:03"),
	}

	out := Interpolate(samples, 1)
	require.Len(t, out, 6)

	var p1, p2 []*model.TrackingSample
	for _, s := range out {
		switch s.PlayerID {
		case "p1":
			p1 = append(p1, s)
		case "p2":
			p2 = append(p2, s)
		}
	}
	require.Len(t, p1, 3)
	require.Len(t, p2, 3)

	// each entity interpolated on its own timeline
	assert.Equal(t, 10.0, p1[1].X)
	assert.Equal(t, 90.0, p2[1].X)
	assert.Equal(t, 2.0, p1[1].FrameID)
	assert.Equal(t, 2.0, p2[1].FrameID)
}

func TestInterpolateTimestampFallback(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("ball", 1, 0, 0, "not-a-clock"),
		tracked("ball", 2, 10, 10, "00:00:02"),
	}

	out := Interpolate(samples, 2)
	require.Len(t, out, 4)
	assert.Equal(t, "not-a-clock", out[1].Timestamp)
	assert.Equal(t, "not-a-clock", out[2].Timestamp)
}

func TestInterpolateDeterministic(t *testing.T) {
	samples := []*model.TrackingSample{
		tracked("p1", 1, 0, 0, "00:00:01"),
		tracked("p2", 1, 100, 100, "00:00:01"),
		tracked("p1", 2, 10, 10, "00:00:02"),
		tracked("p2", 2, 90, 90, "00:00:02"),
	}

	first := Interpolate(samples, 2)
	second := Interpolate(samples, 2)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].PlayerID, second[i].PlayerID)
		assert.Equal(t, first[i].FrameID, second[i].FrameID)
		assert.Equal(t, first[i].X, second[i].X)
	}
}

func TestInterpolationAlignsAcrossSubsets(t *testing.T) {
	ball := []*model.TrackingSample{
		tracked("ball", 10, 0, 0, "00:01:00"),
		tracked("ball", 12, 10, 10, "00:01:02"),
	}
	players := []*model.TrackingSample{
		tracked("p1", 10, 5, 5, "00:01:00"),
		tracked("p1", 12, 15, 15, "00:01:02"),
	}

	denseBall := Interpolate(ball, 3)
	densePlayers := Interpolate(players, 3)
	require.Equal(t, len(denseBall), len(densePlayers))

	// identical densities produce identical fractional frame ids
	for i := range denseBall {
		assert.Equal(t, denseBall[i].FrameID, densePlayers[i].FrameID)
	}
}
