package scenario

import (
	"path/filepath"
	"testing"

	"github.com/nhamil/slideshow/internal/timeline"
)

func sampleTimeline() *timeline.Timeline {
	tl := timeline.New()

	a := timeline.NewItem("a.png", timeline.Vec2{X: 0.1, Y: 0.2}, timeline.Vec2{X: 0.5, Y: 0.5})
	a.StartTime = 0
	a.Duration = 7
	tl.Add(a)

	b := timeline.NewItem("b.png", timeline.Vec2{X: 0.4, Y: 0}, timeline.Vec2{X: 0.25, Y: 0.25})
	b.StartTime = 8
	b.Duration = 9
	b.FadeIn = 0.5
	tl.Add(b)

	return tl
}

func TestFromTimelineRoundTrip(t *testing.T) {
	tl := sampleTimeline()

	s := FromTimeline(tl)
	if s.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", s.Version)
	}
	if s.TotalDuration != tl.TotalDuration() {
		t.Errorf("expected total duration %v, got %v", tl.TotalDuration(), s.TotalDuration)
	}
	if len(s.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(s.Items))
	}
	if s.Items[0].Source != "b.png" {
		t.Errorf("draw order must be preserved, head is %s", s.Items[0].Source)
	}

	rebuilt := s.Timeline()
	if rebuilt.Len() != tl.Len() {
		t.Fatalf("expected %d items, got %d", tl.Len(), rebuilt.Len())
	}
	if rebuilt.TotalDuration() != tl.TotalDuration() {
		t.Errorf("expected total duration %v, got %v", tl.TotalDuration(), rebuilt.TotalDuration())
	}

	orig := tl.Items()
	for i, it := range rebuilt.Items() {
		want := orig[i]
		if it.Source != want.Source {
			t.Errorf("item %d: expected %s, got %s", i, want.Source, it.Source)
		}
		if it.Position != want.Position || it.Size != want.Size {
			t.Errorf("item %d: geometry changed", i)
		}
		if it.StartTime != want.StartTime || it.Duration != want.Duration ||
			it.FadeIn != want.FadeIn || it.FadeOut != want.FadeOut {
			t.Errorf("item %d: timing changed", i)
		}
	}
}

func TestWriteRead(t *testing.T) {
	s := FromTimeline(sampleTimeline())

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := Write(s, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if read.Version != s.Version {
		t.Errorf("version mismatch: expected %s, got %s", s.Version, read.Version)
	}
	if len(read.Items) != len(s.Items) {
		t.Fatalf("item count mismatch: expected %d, got %d", len(s.Items), len(read.Items))
	}
	if read.Items[0] != s.Items[0] {
		t.Errorf("head item changed across write/read: %+v vs %+v", read.Items[0], s.Items[0])
	}
}
