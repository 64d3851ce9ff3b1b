// Package derive computes every dashboard aggregate from a raw goal
// snapshot. All functions are pure: inputs are the snapshot, the acting
// user, the active group code, and an explicit clock value. No I/O, no
// package state, so every aggregate can be unit-tested in isolation and
// recomputed from scratch on each pushed snapshot.
package derive

import (
	"math"
	"sort"
	"time"

	"github.com/anshsahu01/nudge/internal/model"
)

// View is the complete derived state for one user's dashboard.
type View struct {
	Goals       []model.Goal `json:"goals"` // scoped + sorted, all members
	MyActive    []model.Goal `json:"myActive"`
	MyCompleted []model.Goal `json:"myCompleted"`
	Others      []model.Goal `json:"others"`
	Streak      int          `json:"streak"`
	Heatmap     []HeatmapDay `json:"heatmap"`
	Members     []Member     `json:"members"`
	Completion  int          `json:"completionPercentage"`
}

// Compute derives the full dashboard view for one user. The snapshot may
// be unordered and may contain goals from any group; scoping happens
// first and everything else operates on the scoped subset.
func Compute(snapshot []model.Goal, userID, groupCode string, now time.Time) View {
	scoped := ScopeToGroup(snapshot, groupCode)
	SortSnapshot(scoped)

	mine, others := Partition(scoped, userID)
	active, completed := SplitCompleted(mine)

	return View{
		Goals:       scoped,
		MyActive:    active,
		MyCompleted: completed,
		Others:      others,
		Streak:      Streak(completed, now),
		Heatmap:     Heatmap(completed, now),
		Members:     Members(others),
		Completion:  CompletionPercent(len(active), len(completed)),
	}
}

// ScopeToGroup returns the goals belonging to the active group. The
// result is a fresh slice; the input is never mutated.
func ScopeToGroup(goals []model.Goal, groupCode string) []model.Goal {
	scoped := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.GroupCode == groupCode {
			scoped = append(scoped, g)
		}
	}
	return scoped
}

// Partition splits goals into the acting user's and everyone else's,
// preserving order. Every goal lands in exactly one side.
func Partition(goals []model.Goal, userID string) (mine, others []model.Goal) {
	mine = make([]model.Goal, 0, len(goals))
	others = make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.UserID == userID {
			mine = append(mine, g)
		} else {
			others = append(others, g)
		}
	}
	return mine, others
}

// SplitCompleted partitions by completion status, preserving order.
func SplitCompleted(goals []model.Goal) (active, completed []model.Goal) {
	active = make([]model.Goal, 0, len(goals))
	completed = make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Completed {
			completed = append(completed, g)
		} else {
			active = append(active, g)
		}
	}
	return active, completed
}

// SortSnapshot orders goals in place: incomplete before complete; when
// both sides carry a due date, earliest due date first (lexicographic is
// exact for fixed-width ISO dates); otherwise newest first, with an unset
// creation time sorting last. The sort is stable so equal goals keep
// their snapshot order.
func SortSnapshot(goals []model.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := &goals[i], &goals[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.DueDate != "" && b.DueDate != "" {
			return a.DueDate < b.DueDate
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// CompletionPercent is the rounded share of completed goals among the
// user's own goals, 0 when there are none.
func CompletionPercent(activeCount, completedCount int) int {
	total := activeCount + completedCount
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completedCount) / float64(total) * 100))
}
