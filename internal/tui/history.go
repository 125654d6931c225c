package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/houseiq/houseiq-client/models"
)

const historyPageSize = 10

type historyModel struct {
	items    []models.Prediction
	idx      int
	page     int
	lastPage bool
	loading  bool
	spinner  spinner.Model
	status   string
}

func newHistoryModel() historyModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return historyModel{spinner: s, loading: true}
}

func (m historyModel) current() (models.Prediction, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Prediction{}, false
	}
	return m.items[m.idx], true
}

func (m historyModel) View() string {
	out := ""
	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else if len(m.items) == 0 {
		if m.page == 0 {
			out += "No predictions yet\n"
		} else {
			out += "Nothing on this page\n"
		}
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			created := "-"
			if !item.CreatedAt.IsZero() {
				created = item.CreatedAt.Format("2006-01-02 15:04")
			}
			out += fmt.Sprintf("%s%-12s  %s  %s\n", cursor, formatPrice(item.PredictedPrice), created, fitText(item.ID, 12))
		}
	}

	out += fmt.Sprintf("\nPage %d\n", m.page+1)
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage("HISTORY", out, "enter: open │ d: delete │ ←/→: page │ esc: dashboard")
}
