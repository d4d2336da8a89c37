package animation

// Point is a pitch-relative position.
type Point struct {
	X float64
	Y float64
}

// FrameUpdate carries everything that changes between two rendered frames: the
// marker positions of the ball and both teams, and the overlay texts.
type FrameUpdate struct {
	Ball   Point
	Home   []Point
	Away   []Point
	Clock  string
	Period string
}

// Renderer is the drawing/encoding backend contract. Begin draws the static pitch
// background once and opens the encoder for the announced number of frames; Frame
// renders one frame and streams it to the encoder; Finish flushes the encoded video
// to disk. Implementations must not require all frames to be held in memory.
type Renderer interface {
	Begin(title string, frames int) error
	Frame(update FrameUpdate) error
	Finish() error
}
