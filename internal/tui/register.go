package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{name, email, password, repeat}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString("Name      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat    │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
