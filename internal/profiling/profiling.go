package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for render-loop insights.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameStart  = time.Now()
)

// Track returns a stop function that records the elapsed time under the
// given name. Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	frameStart = time.Now()
	mu.Unlock()
}

// FrameReport renders the frame's tracked sections, slowest first, with the
// total frame wall time. Intended for periodic logging, not per-frame output.
func FrameReport() string {
	mu.Lock()
	defer mu.Unlock()

	type entry struct {
		name string
		d    time.Duration
	}
	entries := make([]entry, 0, len(frameTotals))
	for name, d := range frameTotals {
		entries = append(entries, entry{name, d})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].d > entries[j].d })

	var sb strings.Builder
	fmt.Fprintf(&sb, "frame %.2fms", float64(time.Since(frameStart).Microseconds())/1000)
	for _, e := range entries {
		fmt.Fprintf(&sb, " | %s %.2fms", e.name, float64(e.d.Microseconds())/1000)
	}
	return sb.String()
}
