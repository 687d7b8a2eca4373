// Package clips maps wall-clock match events onto the video timeline.
package clips

// Clip is the extraction plan for one match: where the clip starts in the
// video file, how long it runs, and where it goes. Computed per match and
// consumed immediately.
type Clip struct {
	Name     string
	Start    float64 // seconds into the video
	Duration float64 // seconds
	Output   string
}

// End returns the clip's end position in the video, in seconds.
func (c *Clip) End() float64 {
	return c.Start + c.Duration
}
