package debug

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
const updateInterval = 30

// Debug holds runtime frame statistics (FPS, heap allocation). All reports are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	now          func() time.Time
	frameCount   uint32
	lastSample   time.Time
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all reports hidden. now is the clock used to measure
// frame rate; nil means time.Now.
func New(now func() time.Time) *Debug {
	if now == nil {
		now = time.Now
	}
	return &Debug{now: now}
}

// SetShowFPS sets whether the FPS counter is reported.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is reported.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Tick counts one presented frame. Every updateInterval frames it recomputes the report
// and returns it with updated set; otherwise it returns the last report and false.
func (d *Debug) Tick() (text string, updated bool) {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return "", false
	}
	now := d.now()
	if d.lastSample.IsZero() {
		d.lastSample = now
	}
	d.frameCount++
	if d.frameCount%updateInterval != 0 {
		return d.Text(), false
	}

	if d.ShowFPS {
		fps := 0.0
		if elapsed := now.Sub(d.lastSample).Seconds(); elapsed > 0 {
			fps = updateInterval / elapsed
		}
		d.lastFpsText = fmt.Sprintf("FPS: %d", int(fps+0.5))
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}
	d.lastSample = now
	return d.Text(), true
}

// Text joins the enabled reports, e.g. "FPS: 60 | Mem: 1.20 MiB".
func (d *Debug) Text() string {
	parts := make([]string, 0, 2)
	if d.ShowFPS && d.lastFpsText != "" {
		parts = append(parts, d.lastFpsText)
	}
	if d.ShowMemAlloc && d.lastMemText != "" {
		parts = append(parts, d.lastMemText)
	}
	return strings.Join(parts, " | ")
}
