package derive

import (
	"github.com/anshsahu01/nudge/internal/model"
)

// Member is one group member's aggregate over their goals, as seen by the
// acting user.
type Member struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Pending   int    `json:"pending"`
	Completed int    `json:"completed"`
}

// Members aggregates others' goals into one roster entry per user, in the
// order users first appear in the (already sorted) input. Name and email
// come from the first record seen; the denormalized identity fields are
// assumed consistent per user.
func Members(others []model.Goal) []Member {
	index := make(map[string]int, len(others))
	roster := make([]Member, 0, len(others))

	for _, g := range others {
		i, ok := index[g.UserID]
		if !ok {
			i = len(roster)
			index[g.UserID] = i
			roster = append(roster, Member{
				UserID: g.UserID,
				Name:   g.UserName,
				Email:  g.UserEmail,
			})
		}
		if g.Completed {
			roster[i].Completed++
		} else {
			roster[i].Pending++
		}
	}
	return roster
}
