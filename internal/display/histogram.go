package display

import (
	"fmt"
	"strings"

	"github.com/lox/xoshiro/internal/statistics"
)

const barWidth = 40

// Histogram renders bucket counts as a table with proportional bars. Buckets
// outside [lo, hi] are marked as failures.
func Histogram(h *statistics.Histogram, lo, hi uint64) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf(" %-8s %12s %9s ", "value", "count", "share")))
	b.WriteString("\n")

	var peak uint64
	for _, c := range h.Counts {
		peak = max(peak, c)
	}
	total := h.Total()

	for v, c := range h.Counts {
		share := 0.0
		if total > 0 {
			share = 100 * float64(c) / float64(total)
		}
		width := 0
		if peak > 0 {
			width = int(c * barWidth / peak)
		}

		status := PassStyle.Render("ok")
		if c < lo || c > hi {
			status = FailStyle.Render("out of range")
		}

		fmt.Fprintf(&b, " %-8d %12d %8.3f%% %s %s\n",
			v, c, share, BarStyle.Render(strings.Repeat("#", width)), status)
	}

	fmt.Fprintf(&b, "%s\n", DimStyle.Render(fmt.Sprintf(
		"total=%d expected=%.1f accepted=[%d, %d] chi2=%.3f (df=%d)",
		total, h.Expected(), lo, hi, h.ChiSquare(), len(h.Counts)-1)))

	return b.String()
}
