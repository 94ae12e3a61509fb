package debug

import (
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step every time it is read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestTickReportsFPSEveryInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0), step: time.Second / 60}
	d := New(clock.now)
	d.SetShowFPS(true)

	for i := 1; i < updateInterval; i++ {
		if _, updated := d.Tick(); updated {
			t.Fatalf("frame %d: unexpected update", i)
		}
	}
	text, updated := d.Tick()
	if !updated {
		t.Fatal("expected an update on the interval frame")
	}
	// First sample is taken on frame 1, so 29 frame gaps cover 30 counted frames.
	if text != "FPS: 62" {
		t.Errorf("text = %q, want %q", text, "FPS: 62")
	}

	for i := 0; i < updateInterval; i++ {
		text, updated = d.Tick()
	}
	if !updated || text != "FPS: 60" {
		t.Errorf("second report = %q (updated %v), want FPS: 60", text, updated)
	}
}

func TestTickDisabled(t *testing.T) {
	d := New(nil)
	for i := 0; i < 2*updateInterval; i++ {
		if text, updated := d.Tick(); updated || text != "" {
			t.Fatalf("disabled debug produced %q", text)
		}
	}
}

func TestTextJoinsReports(t *testing.T) {
	d := New(nil)
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)
	var text string
	for i := 0; i < updateInterval; i++ {
		text, _ = d.Tick()
	}
	if !strings.HasPrefix(text, "FPS: ") || !strings.Contains(text, " | Mem: ") {
		t.Errorf("text = %q", text)
	}
}
