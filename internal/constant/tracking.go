package constant

const (
	// BallEntityID is the sentinel player_id the tracking provider uses for the ball.
	BallEntityID = "ball"

	// MatchClockLayout is the time-of-day layout used by tracking and match event timestamps.
	MatchClockLayout = "15:04:05"
)
