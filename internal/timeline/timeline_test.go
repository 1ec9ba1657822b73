package timeline

import (
	"testing"
)

func TestAddOrdering(t *testing.T) {
	tl := New()

	a := NewItem("a.png", Vec2{}, Vec2{X: 1, Y: 1})
	b := NewItem("b.png", Vec2{}, Vec2{X: 1, Y: 1})
	c := NewItem("c.png", Vec2{}, Vec2{X: 1, Y: 1})

	tl.Add(a)
	tl.Add(b)
	tl.Add(c)

	items := tl.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	expected := []string{"c.png", "b.png", "a.png"}
	for i, want := range expected {
		if items[i].Source != want {
			t.Errorf("item %d: expected %s, got %s", i, want, items[i].Source)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	tl := New()

	if tl.TotalDuration() != 0 {
		t.Errorf("empty timeline should have zero duration, got %v", tl.TotalDuration())
	}

	first := NewItem("a.png", Vec2{}, Vec2{})
	first.StartTime = 0
	first.Duration = 10
	tl.Add(first)

	if tl.TotalDuration() != 10 {
		t.Errorf("expected 10, got %v", tl.TotalDuration())
	}

	second := NewItem("b.png", Vec2{}, Vec2{})
	second.StartTime = 5
	second.Duration = 20
	tl.Add(second)

	if tl.TotalDuration() != 25 {
		t.Errorf("expected 25, got %v", tl.TotalDuration())
	}

	// a shorter item must not shrink the loop
	third := NewItem("c.png", Vec2{}, Vec2{})
	third.StartTime = 1
	third.Duration = 2
	tl.Add(third)

	if tl.TotalDuration() != 25 {
		t.Errorf("expected 25 after short item, got %v", tl.TotalDuration())
	}
}

func TestNewItemDefaults(t *testing.T) {
	it := NewItem("x.png", Vec2{X: 0.5, Y: 0.5}, Vec2{X: 0.25, Y: 0.25})

	if it.StartTime != 0 {
		t.Errorf("expected start 0, got %v", it.StartTime)
	}
	if it.Duration != DefaultDuration {
		t.Errorf("expected duration %v, got %v", DefaultDuration, it.Duration)
	}
	if it.FadeIn != DefaultFade || it.FadeOut != DefaultFade {
		t.Errorf("expected %vs fades, got %v/%v", DefaultFade, it.FadeIn, it.FadeOut)
	}
	if it.EndTime() != DefaultDuration {
		t.Errorf("expected end time %v, got %v", DefaultDuration, it.EndTime())
	}
}
