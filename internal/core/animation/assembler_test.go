package animation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/pitchsight/trackviz/internal/model"
)

type recordingRenderer struct {
	began    bool
	title    string
	frames   int
	updates  []FrameUpdate
	finished bool

	frameErr error
}

func (r *recordingRenderer) Begin(title string, frames int) error {
	r.began = true
	r.title = title
	r.frames = frames
	return nil
}

func (r *recordingRenderer) Frame(update FrameUpdate) error {
	if r.frameErr != nil {
		return r.frameErr
	}
	r.updates = append(r.updates, update)
	return nil
}

func (r *recordingRenderer) Finish() error {
	r.finished = true
	return nil
}

func ballSample(frameID, x, y float64, timestamp string) *model.TrackingSample {
	return &model.TrackingSample{
		PlayerID:  "ball",
		FrameID:   frameID,
		X:         x,
		Y:         y,
		Timestamp: timestamp,
	}
}

func playerSample(playerID string, frameID, x, y float64) *model.TrackingSample {
	return &model.TrackingSample{
		PlayerID: playerID,
		FrameID:  frameID,
		X:        x,
		Y:        y,
	}
}

func TestAnimateOneFramePerBallRow(t *testing.T) {
	ball := []*model.TrackingSample{
		ballSample(1, 10, 10, "00:00:01"),
		ballSample(2, 20, 20, "00:00:02"),
		ballSample(3, 30, 30, "00:00:03"),
	}
	home := []*model.TrackingSample{
		playerSample("p1", 1, 5, 5),
		playerSample("p1", 2, 6, 6),
	}
	away := []*model.TrackingSample{
		playerSample("p2", 2, 90, 90),
	}

	r := &recordingRenderer{}
	err := NewAssembler().Animate(ball, home, away, r)
	require.NoError(t, err)

	assert.True(t, r.began)
	assert.Equal(t, 3, r.frames)
	assert.Equal(t, "Match Analysis: 00:00:01 to 00:00:03", r.title)
	assert.True(t, r.finished)
	require.Len(t, r.updates, 3)

	assert.Equal(t, Point{X: 10, Y: 10}, r.updates[0].Ball)
	assert.Equal(t, []Point{{X: 5, Y: 5}}, r.updates[0].Home)
	assert.Empty(t, r.updates[0].Away)

	assert.Equal(t, []Point{{X: 6, Y: 6}}, r.updates[1].Home)
	assert.Equal(t, []Point{{X: 90, Y: 90}}, r.updates[1].Away)

	// frame 3 has no player observations; markers are empty, not stale
	assert.Empty(t, r.updates[2].Home)
	assert.Empty(t, r.updates[2].Away)
}

func TestAnimatePeriodOverlay(t *testing.T) {
	withPeriod := ballSample(1, 0, 0, "00:00:01")
	withPeriod.PeriodID = null.IntFrom(2)
	ball := []*model.TrackingSample{
		withPeriod,
		ballSample(2, 1, 1, "00:00:02"),
	}

	r := &recordingRenderer{}
	err := NewAssembler().Animate(ball, nil, nil, r)
	require.NoError(t, err)
	require.Len(t, r.updates, 2)

	assert.Equal(t, "2", r.updates[0].Period)
	assert.Equal(t, PeriodPlaceholder, r.updates[1].Period)
	assert.Equal(t, "00:00:01", r.updates[0].Clock)
}

func TestAnimateEmptyBallSubset(t *testing.T) {
	r := &recordingRenderer{}
	err := NewAssembler().Animate(nil, nil, nil, r)
	require.NoError(t, err)

	assert.False(t, r.began)
	assert.False(t, r.finished)
	assert.Empty(t, r.updates)
}

func TestAnimateFrameErrorPropagates(t *testing.T) {
	ball := []*model.TrackingSample{ballSample(1, 0, 0, "00:00:01")}

	r := &recordingRenderer{frameErr: errors.New("encoder died")}
	err := NewAssembler().Animate(ball, nil, nil, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder died")
	assert.False(t, r.finished)
}

func TestBuildIndexGroupsByFrameID(t *testing.T) {
	samples := []*model.TrackingSample{
		playerSample("p1", 1, 0, 0),
		playerSample("p2", 1, 1, 1),
		playerSample("p1", 1.5, 2, 2),
	}

	index := BuildIndex(samples)
	require.Len(t, index, 2)
	assert.Len(t, index[1], 2)
	assert.Len(t, index[1.5], 1)
	assert.Empty(t, index[2])
}
