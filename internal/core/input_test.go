package core

import (
	"testing"
	"time"
)

func TestPointerTrackerClassifies(t *testing.T) {
	var p PointerTracker
	t0 := time.Unix(1000, 0)

	if _, ok := p.Release(1, 1, t0); ok {
		t.Fatal("release without press should be ignored")
	}

	p.Press(10, 10, t0)
	g, ok := p.Release(12, 11, t0.Add(80*time.Millisecond))
	if !ok || g.Kind != GestureClick {
		t.Errorf("small movement should be a click, got %+v", g)
	}

	p.Press(10, 10, t0)
	g, ok = p.Release(13, 10, t0.Add(120*time.Millisecond))
	if !ok || g.Kind != GestureSwipe {
		t.Errorf("distance 3 should be a swipe, got %+v", g)
	}
	if g.ElapsedMillis() != 120 || g.StartX != 10 || g.EndX != 13 {
		t.Errorf("unexpected gesture %+v", g)
	}
	if _, ok := p.Release(13, 10, t0.Add(200*time.Millisecond)); ok {
		t.Error("tracker should be idle after release")
	}
}
