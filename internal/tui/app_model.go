package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/houseiq/houseiq-client/internal/guard"
	"github.com/houseiq/houseiq-client/internal/service"
	"github.com/houseiq/houseiq-client/internal/workers"
	"github.com/houseiq/houseiq-client/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenDashboard
	screenForm
	screenResult
	screenHistory
	screenDetail
)

// screenRequirement classifies each screen for the route guard. Welcome,
// login and register are anonymous-only; everything past them needs an
// authenticated session.
func screenRequirement(s screen) guard.Requirement {
	switch s {
	case screenWelcome, screenLogin, screenRegister:
		return guard.Public
	default:
		return guard.Protected
	}
}

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	health        *workers.HealthWorker
	currentScreen screen

	welcome   welcomeModel
	login     loginModel
	register  registerModel
	dashboard dashboardModel
	form      predictionFormModel
	result    resultModel
	history   historyModel
	detail    detailModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, health *workers.HealthWorker) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		health:    health,
		welcome:   newWelcomeModel(),
		login:     newLoginModel(),
		register:  newRegisterModel(),
		dashboard: newDashboardModel(),
		form:      newPredictionFormModel(),
		history:   newHistoryModel(),
	}
	m.dashboard.user = services.Session.User()

	// The guard picks the landing screen: dashboard for a restored session,
	// welcome otherwise.
	if guard.Decide(services.Session.State(), guard.Protected) == guard.Render {
		m.currentScreen = screenDashboard
	} else {
		m = m.navigate(screenWelcome)
	}
	return m
}

// navigate routes to target through the guard: anonymous users get bounced
// off protected screens onto login, authenticated users get bounced off
// public screens onto the dashboard.
func (m appModel) navigate(target screen) appModel {
	switch guard.Decide(m.services.Session.State(), screenRequirement(target)) {
	case guard.Render:
		m.currentScreen = target
	case guard.RedirectToLogin:
		m.login = newLoginModel()
		m.currentScreen = screenLogin
	case guard.RedirectToDashboard:
		m.currentScreen = screenDashboard
	case guard.ShowLoading:
		m.currentScreen = screenLoading
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdHealthTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeletePrediction(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			return m.handleServerError(msg.err), nil
		}
		m.dashboard.user = &msg.user
		m.login = newLoginModel()
		m.register = newRegisterModel()
		m = m.navigate(screenDashboard)
		return m, nil
	case predictionDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			return m.handleServerError(msg.err), nil
		}
		m.form = newPredictionFormModel()
		m.result = resultModel{prediction: msg.prediction}
		m = m.navigate(screenResult)
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			return m.handleServerError(msg.err), nil
		}
		m.history.items = msg.items
		m.history.lastPage = len(msg.items) < historyPageSize
		if m.history.idx >= len(m.history.items) {
			m.history.idx = len(m.history.items) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil
	case predictionDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			return m.handleServerError(msg.err), nil
		}
		m = m.navigate(screenHistory)
		cmd := m.startHistoryLoad()
		return m, cmd
	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		m.result.status = "Copied!"
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.result.status = ""
		m.detail.status = ""
		return m, nil
	case healthTickMsg:
		return m, cmdHealthTick()
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLoading:
		body = renderPage("HOUSEIQ", "Loading...", "")
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View(m.health.Snapshot())
	case screenForm:
		body = m.form.View()
	case screenResult:
		body = m.result.View()
	case screenHistory:
		body = m.history.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

// handleServerError shows the error and, when the session was implicitly
// logged out underneath us, bounces back to the login screen.
func (m appModel) handleServerError(err error) appModel {
	if m.services.Session.State() != service.StateAuthenticated &&
		screenRequirement(m.currentScreen) == guard.Protected {
		m.dashboard.user = nil
		m = m.navigate(screenLogin)
		m.showErrorf("Your session has expired, please sign in again")
		return m
	}
	m.showErrorf(err.Error())
	return m
}

// ── Screen updates ───────────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m = m.navigate(screenLogin)
		} else {
			m = m.navigate(screenRegister)
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Name, email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(email, pass, name)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.items)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.dashboard.idx {
		case 0:
			m.form = newPredictionFormModel()
			m = m.navigate(screenForm)
		case 1:
			m = m.navigate(screenHistory)
			cmd := m.startHistoryLoad()
			return m, cmd
		case 2:
			return m, m.cmdLogout()
		}
	case key.Matches(keyMsg, keys.newItem):
		m.form = newPredictionFormModel()
		m = m.navigate(screenForm)
	case key.Matches(keyMsg, keys.history):
		m = m.navigate(screenHistory)
		cmd := m.startHistoryLoad()
		return m, cmd
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m = m.navigate(screenDashboard)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = focusNext(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = focusPrev(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			req, err := m.form.toRequest()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdPredict(req)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m = m.navigate(screenDashboard)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newPredictionFormModel()
		m = m.navigate(screenForm)
	case key.Matches(keyMsg, keys.history):
		m = m.navigate(screenHistory)
		cmd := m.startHistoryLoad()
		return m, cmd
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(formatPrice(m.result.prediction.PredictedPrice))
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.history.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m = m.navigate(screenDashboard)
		case key.Matches(msg, keys.up):
			if m.history.idx > 0 {
				m.history.idx--
			}
		case key.Matches(msg, keys.down):
			if m.history.idx < len(m.history.items)-1 {
				m.history.idx++
			}
		case key.Matches(msg, keys.left):
			if m.history.page > 0 {
				m.history.page--
				cmd := m.startHistoryLoad()
				return m, cmd
			}
		case key.Matches(msg, keys.right):
			if !m.history.lastPage {
				m.history.page++
				cmd := m.startHistoryLoad()
				return m, cmd
			}
		case key.Matches(msg, keys.enter):
			item, ok := m.history.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{item: item}
			m = m.navigate(screenDetail)
		case key.Matches(msg, keys.delete):
			item, ok := m.history.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = formatPrice(item.PredictedPrice)
			m.pendingDelete = item.ID
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.history.loading {
			var cmd tea.Cmd
			m.history.spinner, cmd = m.history.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m = m.navigate(screenHistory)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(formatPrice(m.detail.item.PredictedPrice))
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = formatPrice(m.detail.item.PredictedPrice)
		m.pendingDelete = m.detail.item.ID
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m *appModel) startHistoryLoad() tea.Cmd {
	m.history.loading = true
	return tea.Batch(m.history.spinner.Tick, m.cmdLoadHistory(m.history.page))
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		user, err := session.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(email, password, name string) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		user, err := session.Register(ctx, email, password, name)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		session.Logout()
		return loggedOutMsg{}
	}
}

func (m appModel) cmdPredict(req models.PredictRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Predictions
	return func() tea.Msg {
		prediction, err := svc.Predict(ctx, req)
		return predictionDoneMsg{prediction: prediction, err: err}
	}
}

func (m appModel) cmdLoadHistory(page int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Predictions
	return func() tea.Msg {
		items, err := svc.History(ctx, page, historyPageSize)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdDeletePrediction(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Predictions
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return predictionDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return predictionDeletedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdHealthTick() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
