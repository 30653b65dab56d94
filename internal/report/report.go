package report

// Bar is a single column of the donations chart: one area and its summed
// donated quantity.
type Bar struct {
	Area  string
	Total int
}

// Renderer draws a chart with one bar per area, height equal to the total.
// Implementations decide the output surface; callers never pass an empty
// bar set.
type Renderer interface {
	Render(bars []Bar) error
}
