package derive

import (
	"time"

	"github.com/anshsahu01/nudge/internal/model"
)

// localDay truncates a timestamp to its local calendar date.
func localDay(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Streak reports the number of distinct local calendar days on which the
// user completed at least one goal, or 0 when neither today nor yesterday
// is among them (the streak has lapsed). This is deliberately a
// distinct-days total rather than a consecutive-run length; see DESIGN.md.
func Streak(completed []model.Goal, now time.Time) int {
	days := completionDays(completed)
	if len(days) == 0 {
		return 0
	}

	today := localDay(now)
	yesterday := localDay(now.AddDate(0, 0, -1))
	if !days[today] && !days[yesterday] {
		return 0
	}
	return len(days)
}

// completionDays collects the distinct local dates carrying a completion.
// Goals without a completion timestamp are skipped, not counted.
func completionDays(completed []model.Goal) map[string]bool {
	days := make(map[string]bool, len(completed))
	for _, g := range completed {
		if g.CompletedAt == nil {
			continue
		}
		days[localDay(*g.CompletedAt)] = true
	}
	return days
}
