package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create an account"}}
}

func (m welcomeModel) View() string {
	out := "Instant property price predictions\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("HouseIQ", out, "enter: select │ q: quit")
}
