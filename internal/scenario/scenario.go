package scenario

import (
	"github.com/nhamil/slideshow/internal/timeline"
)

// Scenario is the portable form of a parsed timeline, written as YAML for
// external renderers. Items appear in draw order (last declared first), the
// same order the in-memory timeline hands out.
type Scenario struct {
	Version       string  `yaml:"version"`
	TotalDuration float64 `yaml:"totalDuration"`
	Items         []Item  `yaml:"items"`
}

// Item is one scheduled image. Position and size are canvas fractions with
// the origin at the bottom-left.
type Item struct {
	Source   string  `yaml:"source"`
	Position Point   `yaml:"position"`
	Size     Point   `yaml:"size"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	FadeIn   float64 `yaml:"fadeIn"`
	FadeOut  float64 `yaml:"fadeOut"`
}

// Point is a 2D value in the YAML form.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FromTimeline captures a timeline as a scenario.
func FromTimeline(tl *timeline.Timeline) *Scenario {
	s := &Scenario{
		Version:       "1.0",
		TotalDuration: tl.TotalDuration(),
	}

	for _, it := range tl.Items() {
		s.Items = append(s.Items, Item{
			Source:   it.Source,
			Position: Point{X: it.Position.X, Y: it.Position.Y},
			Size:     Point{X: it.Size.X, Y: it.Size.Y},
			Start:    it.StartTime,
			Duration: it.Duration,
			FadeIn:   it.FadeIn,
			FadeOut:  it.FadeOut,
		})
	}

	return s
}

// Timeline rebuilds the in-memory timeline from a scenario. Items are added
// in reverse so the prepend-built draw order comes out as stored.
func (s *Scenario) Timeline() *timeline.Timeline {
	tl := timeline.New()

	for i := len(s.Items) - 1; i >= 0; i-- {
		si := s.Items[i]
		item := timeline.NewItem(
			si.Source,
			timeline.Vec2{X: si.Position.X, Y: si.Position.Y},
			timeline.Vec2{X: si.Size.X, Y: si.Size.Y},
		)
		item.StartTime = si.Start
		item.Duration = si.Duration
		item.FadeIn = si.FadeIn
		item.FadeOut = si.FadeOut
		tl.Add(item)
	}

	return tl
}
