package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jws412/Facade/internal/core"
)

// fpsSampleTicks is how many ticks one FPS measurement spans.
const fpsSampleTicks = 100

// FPSMeter measures the achieved tick rate over fixed-size samples.
type FPSMeter struct {
	start time.Time
	ticks int
	fps   float64
	sum   float64
	count int
}

// Tick records one simulation tick at time now.
func (f *FPSMeter) Tick(now time.Time) {
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.ticks++
	if f.ticks < fpsSampleTicks {
		return
	}
	if elapsed := now.Sub(f.start).Seconds(); elapsed > 0 {
		f.fps = float64(f.ticks) / elapsed
		f.sum += f.fps
		f.count++
	}
	f.start = now
	f.ticks = 0
}

// FPS returns the most recent sample, or 0 before the first one completes.
func (f *FPSMeter) FPS() float64 {
	return f.fps
}

// Average returns the mean over all completed samples.
func (f *FPSMeter) Average() float64 {
	if f.count == 0 {
		return 0
	}
	return f.sum / float64(f.count)
}

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	hudDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1)
)

// RenderHUD renders the status line above the playfield.
func RenderHUD(title string, s core.GameState, fps float64, tickRate, width int) string {
	left := hudStyle.Render(title)
	stats := fmt.Sprintf(" deaths %d  stomps %d  t %s", s.Deaths, s.Stomps, formatTicks(s.Ticks, tickRate))
	if fps > 0 {
		stats += fmt.Sprintf("  %.1f fps", fps)
	}
	line := left + hudDimStyle.Render(stats)
	if s.Paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	if gap := width - lipgloss.Width(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// formatTicks renders a tick count as m:ss of simulated time.
func formatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
