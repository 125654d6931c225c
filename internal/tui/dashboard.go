package tui

import (
	"fmt"

	"github.com/houseiq/houseiq-client/internal/workers"
	"github.com/houseiq/houseiq-client/models"
)

type dashboardModel struct {
	items []string
	idx   int
	user  *models.User
}

func newDashboardModel() dashboardModel {
	return dashboardModel{items: []string{"New prediction", "Prediction history", "Log out"}}
}

func healthLine(snap workers.HealthSnapshot) string {
	switch {
	case snap.CheckedAt.IsZero():
		return "Backend: checking..."
	case snap.Reachable:
		return "Backend: online"
	default:
		return "Backend: unreachable"
	}
}

func (m dashboardModel) View(snap workers.HealthSnapshot) string {
	out := ""
	if m.user != nil {
		out += fmt.Sprintf("Signed in as %s\n", m.user.Email)
	}
	out += healthLine(snap) + "\n\n"

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("HOUSEIQ", out, "enter: select │ n: new prediction │ s: history │ o: log out │ q: quit")
}
