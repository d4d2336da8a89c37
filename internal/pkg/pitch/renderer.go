package pitch

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/pitchsight/trackviz/internal/core/animation"
)

const (
	ballRadius   = 5.0
	playerRadius = 8.0
)

// Renderer draws tracking frames onto an opta-style pitch and streams them as raw
// RGBA video into an ffmpeg process, which encodes a widely playable
// libx264/yuv420p file at the requested fps. Frames are encoded as they are
// produced; only the static background and the frame being drawn are held in
// memory.
type Renderer struct {
	path string
	fps  int

	base *image.RGBA
	pw   *io.PipeWriter
	done chan error
	bar  *progressbar.ProgressBar
}

var _ animation.Renderer = (*Renderer)(nil)

func NewRenderer(path string, fps int) animation.Renderer {
	return &Renderer{
		path: path,
		fps:  fps,
	}
}

// Begin draws the static pitch background and starts the encoder.
func (r *Renderer) Begin(title string, frames int) error {
	r.base = drawPitch(title)

	pr, pw := io.Pipe()
	stream := ffmpeg.
		Input("pipe:", ffmpeg.KwArgs{
			"format":    "rawvideo",
			"pix_fmt":   "rgba",
			"s":         fmt.Sprintf("%dx%d", canvasWidth, canvasHeight),
			"framerate": r.fps,
		}).
		Output(r.path, ffmpeg.KwArgs{
			"vcodec":  "libx264",
			"pix_fmt": "yuv420p",
			"preset":  "medium",
			"crf":     18,
			"r":       r.fps,
		}).
		OverWriteOutput().
		WithInput(pr).
		Silent(true)

	r.pw = pw
	r.done = make(chan error, 1)
	go func() {
		err := stream.Run()
		// unblock any in-flight frame write when the encoder dies early
		pr.CloseWithError(err)
		r.done <- err
	}()

	r.bar = progressbar.Default(int64(frames), "rendering frames")
	return nil
}

// Frame draws one frame over a copy of the background and hands it to the encoder.
func (r *Renderer) Frame(update animation.FrameUpdate) error {
	if r.pw == nil {
		return errors.New("renderer not started")
	}

	frame := image.NewRGBA(r.base.Rect)
	copy(frame.Pix, r.base.Pix)
	dc := gg.NewContextForRGBA(frame)

	for _, p := range update.Away {
		drawMarker(dc, p.X, p.Y, playerRadius, awayColor)
	}
	for _, p := range update.Home {
		drawMarker(dc, p.X, p.Y, playerRadius, homeColor)
	}
	drawMarker(dc, update.Ball.X, update.Ball.Y, ballRadius, ballColor)

	dc.SetHexColor(textColor)
	dc.DrawStringAnchored("Time: "+update.Clock, canvasWidth/2, float64(canvasHeight)-marginBottom/2-10, 0.5, 0.5)
	dc.DrawStringAnchored("Period: "+update.Period, canvasWidth/2, float64(canvasHeight)-marginBottom/2+10, 0.5, 0.5)

	if _, err := r.pw.Write(frame.Pix); err != nil {
		return errors.Wrap(err, "failed to stream frame to encoder")
	}
	_ = r.bar.Add(1)
	return nil
}

// Finish closes the frame stream and waits for the encoder to write the file.
func (r *Renderer) Finish() error {
	if r.pw == nil {
		return errors.New("renderer not started")
	}
	_ = r.bar.Finish()
	if err := r.pw.Close(); err != nil {
		return errors.Wrap(err, "failed to close encoder input")
	}
	if err := <-r.done; err != nil {
		return errors.Wrap(err, "ffmpeg encoding failed")
	}
	return nil
}

func drawMarker(dc *gg.Context, x, y, radius float64, fill string) {
	dc.DrawCircle(px(x), py(y), radius)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(edgeColor)
	dc.SetLineWidth(1.5)
	dc.Stroke()
}
