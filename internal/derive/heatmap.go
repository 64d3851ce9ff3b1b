package derive

import (
	"time"

	"github.com/anshsahu01/nudge/internal/model"
)

// HeatmapDays is the fixed window of the consistency heatmap: 12 weeks
// ending today.
const HeatmapDays = 84

// HeatmapDay is one cell of the heatmap: a local calendar date, how many
// goals were completed on it, and a 0-3 display intensity.
type HeatmapDay struct {
	Date  string `json:"date"` // ISO YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Heatmap buckets the user's completions into exactly HeatmapDays entries,
// oldest first, ending on today's local date. Input size does not affect
// the shape of the output.
func Heatmap(completed []model.Goal, now time.Time) []HeatmapDay {
	counts := make(map[string]int, len(completed))
	for _, g := range completed {
		if g.CompletedAt == nil {
			continue
		}
		counts[localDay(*g.CompletedAt)]++
	}

	days := make([]HeatmapDay, 0, HeatmapDays)
	for i := HeatmapDays - 1; i >= 0; i-- {
		date := localDay(now.AddDate(0, 0, -i))
		count := counts[date]
		days = append(days, HeatmapDay{
			Date:  date,
			Count: count,
			Level: IntensityLevel(count),
		})
	}
	return days
}

// IntensityLevel maps a per-day completion count to a display bucket.
func IntensityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count == 2:
		return 2
	default:
		return 3
	}
}
