package timeline

// Vec2 is a 2D vector. Positions and sizes start out in the script's
// native units and are normalized to canvas fractions by the parser.
type Vec2 struct {
	X float64
	Y float64
}

// Default timing for an item when the script does not override it.
const (
	DefaultDuration = 5.0
	DefaultFade     = 1.0
)

// Item holds everything needed to schedule one image on the canvas.
// Position and Size are fractions of the canvas in [0,1], origin bottom-left.
// All time fields are seconds.
type Item struct {
	Source    string
	Position  Vec2
	Size      Vec2
	StartTime float64
	Duration  float64
	FadeIn    float64
	FadeOut   float64
}

// NewItem creates an item at the given position and size with default timing.
func NewItem(source string, position, size Vec2) *Item {
	return &Item{
		Source:   source,
		Position: position,
		Size:     size,
		Duration: DefaultDuration,
		FadeIn:   DefaultFade,
		FadeOut:  DefaultFade,
	}
}

// EndTime returns the moment the item expires.
func (it *Item) EndTime() float64 {
	return it.StartTime + it.Duration
}

// Timeline is the ordered set of scheduled items plus the loop period.
//
// Insertion rule: Add puts the new item at the head, so Items() visits the
// last-declared item first. A consumer that draws in that order paints
// earlier-declared items over later ones, which is the behavior the script
// format promises ("images earlier in the file show on top").
type Timeline struct {
	items         []*Item
	totalDuration float64
}

// New creates an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// Add inserts an item at the head of the draw order and extends the loop
// period if the item outlives it. Items must not be mutated after this.
func (t *Timeline) Add(item *Item) {
	t.items = append([]*Item{item}, t.items...)

	if end := item.EndTime(); end > t.totalDuration {
		t.totalDuration = end
	}
}

// Items returns the items in draw order (last declared first).
func (t *Timeline) Items() []*Item {
	return t.items
}

// Len returns the number of scheduled items.
func (t *Timeline) Len() int {
	return len(t.items)
}

// TotalDuration is the loop period: max over items of StartTime+Duration.
// Zero for an empty timeline; callers that wrap playback time must guard it.
func (t *Timeline) TotalDuration() float64 {
	return t.totalDuration
}
