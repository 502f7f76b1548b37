package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/Garsondee/Drone-Survey/internal/terrain"
	"github.com/Garsondee/Drone-Survey/internal/view"
)

// reportHistory is how many recent notifications the status report lists.
const reportHistory = 10

// statusReport renders a plain-text summary for the clipboard.
func statusReport(uptime time.Duration, st view.State, drone view.IntroPhase, sc terrain.Scene, hist []view.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Drone Survey status ---\n")
	fmt.Fprintf(&b, "uptime=%s\n", uptime.Truncate(time.Millisecond))
	fmt.Fprintf(&b, "state: %s\n", st)
	fmt.Fprintf(&b, "drone: %s\n", drone)
	fmt.Fprintf(&b, "terrain: %s\n", sc.Summary())

	if len(hist) > reportHistory {
		hist = hist[len(hist)-reportHistory:]
	}
	b.WriteString("notifications:\n")
	if len(hist) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range hist {
		fmt.Fprintf(&b, "  #%d %s\n", e.Seq, e.Notification.Text())
	}
	return b.String()
}
