package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sparksonic/portal/internal/portal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tabStyle    = lipgloss.NewStyle().Padding(0, 2)
	activeTab   = tabStyle.Bold(true).Underline(true)
)

// refreshMsg signals that a controller operation finished and the view
// should re-read controller state.
type refreshMsg struct{}

// tickMsg drives the transient error clear.
type tickMsg struct{}

type model struct {
	controller *portal.Controller
	inputs     []textinput.Model
	focus      int
	width      int
}

const (
	// login view inputs
	idxLoginEmail = iota
	idxLoginPassword
)

const (
	// register view inputs
	idxRegEmail = iota
	idxRegPassword
	idxRegFullName
	idxRegPhone
)

const (
	// ticket form inputs
	idxTicketSubject = iota
	idxTicketDescription
	idxTicketPriority
)

func newModel(controller *portal.Controller) model {
	return model{controller: controller, inputs: loginInputs("")}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		m.controller.CheckAuth(context.Background())
		return refreshMsg{}
	})
}

func loginInputs(email string) []textinput.Model {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.SetValue(email)
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.EchoMode = textinput.EchoPassword

	return []textinput.Model{emailInput, passwordInput}
}

func registerInputs() []textinput.Model {
	names := []string{"email", "password (min 6 chars)", "full name", "phone (optional)"}
	inputs := make([]textinput.Model, len(names))
	for i, name := range names {
		in := textinput.New()
		in.Placeholder = name
		if i == idxRegPassword {
			in.EchoMode = textinput.EchoPassword
		}
		inputs[i] = in
	}
	inputs[0].Focus()
	return inputs
}

func ticketInputs() []textinput.Model {
	names := []string{"subject", "description", "priority (low/medium/high)"}
	inputs := make([]textinput.Model, len(names))
	for i, name := range names {
		in := textinput.New()
		in.Placeholder = name
		inputs[i] = in
	}
	inputs[idxTicketPriority].SetValue("medium")
	inputs[0].Focus()
	return inputs
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshMsg:
		// Re-seed form inputs when the controller changed views underneath us.
		switch m.controller.State() {
		case portal.StateLogin:
			if len(m.inputs) != 2 {
				m.inputs = loginInputs(m.controller.LoginForm.Email)
				m.focus = 0
			}
		case portal.StateDashboard:
			if len(m.inputs) != 3 {
				m.inputs = ticketInputs()
				m.focus = 0
			}
		}
		return m, nil

	case tickMsg:
		m.controller.ClearTransient()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		if len(m.inputs) == 0 {
			return m, nil
		}
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focus--
		} else {
			m.focus++
		}
		if m.focus >= len(m.inputs) {
			m.focus = 0
		}
		if m.focus < 0 {
			m.focus = len(m.inputs) - 1
		}
		cmds := make([]tea.Cmd, 0, len(m.inputs))
		for i := range m.inputs {
			if i == m.focus {
				cmds = append(cmds, m.inputs[i].Focus())
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, tea.Batch(cmds...)

	case "enter":
		return m.submit()
	}

	switch m.controller.State() {
	case portal.StateLogin:
		if msg.String() == "ctrl+r" {
			m.controller.ShowRegister()
			m.inputs = registerInputs()
			m.focus = 0
			return m, nil
		}
	case portal.StateRegister:
		if msg.String() == "ctrl+l" {
			m.controller.ShowLogin()
			m.inputs = loginInputs(m.controller.LoginForm.Email)
			m.focus = 0
			return m, nil
		}
	case portal.StateDashboard:
		switch msg.String() {
		case "ctrl+l":
			m.controller.Logout()
			m.inputs = loginInputs("")
			m.focus = 0
			return m, nil
		case "left", "right":
			m.cycleTab(msg.String() == "right")
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m *model) cycleTab(forward bool) {
	tabs := []portal.Tab{portal.TabDashboard, portal.TabQuotes, portal.TabTickets}
	current := 0
	for i, tab := range tabs {
		if tab == m.controller.ActiveTab() {
			current = i
		}
	}
	if forward {
		current = (current + 1) % len(tabs)
	} else {
		current = (current + len(tabs) - 1) % len(tabs)
	}
	m.controller.SelectTab(tabs[current])
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.controller.Sending() || m.controller.Loading() {
		// Drop submissions while a request is outstanding.
		return m, nil
	}

	ctrl := m.controller
	switch ctrl.State() {
	case portal.StateLogin:
		ctrl.LoginForm.Email = strings.TrimSpace(m.inputs[idxLoginEmail].Value())
		ctrl.LoginForm.Password = m.inputs[idxLoginPassword].Value()
		return m, tea.Batch(m.async(func() { ctrl.Login(context.Background()) }), m.errClearTick())

	case portal.StateRegister:
		ctrl.RegisterForm.Email = strings.TrimSpace(m.inputs[idxRegEmail].Value())
		ctrl.RegisterForm.Password = m.inputs[idxRegPassword].Value()
		ctrl.RegisterForm.FullName = strings.TrimSpace(m.inputs[idxRegFullName].Value())
		ctrl.RegisterForm.Phone = strings.TrimSpace(m.inputs[idxRegPhone].Value())
		return m, tea.Batch(m.async(func() { ctrl.Register(context.Background()) }), m.errClearTick())

	case portal.StateDashboard:
		if ctrl.ActiveTab() != portal.TabTickets {
			return m, nil
		}
		ctrl.TicketForm.Subject = strings.TrimSpace(m.inputs[idxTicketSubject].Value())
		ctrl.TicketForm.Description = strings.TrimSpace(m.inputs[idxTicketDescription].Value())
		ctrl.TicketForm.Priority = strings.TrimSpace(m.inputs[idxTicketPriority].Value())
		return m, tea.Batch(m.async(func() { ctrl.CreateTicket(context.Background()) }), m.errClearTick())
	}
	return m, nil
}

func (m model) async(op func()) tea.Cmd {
	return func() tea.Msg {
		op()
		return refreshMsg{}
	}
}

func (m model) errClearTick() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	var b strings.Builder

	switch m.controller.State() {
	case portal.StateLoading:
		b.WriteString(titleStyle.Render("Sparksonic Customer Portal"))
		b.WriteString("\n\nLoading...\n")

	case portal.StateLogin:
		b.WriteString(titleStyle.Render("Customer Portal — Login"))
		b.WriteString("\n\n")
		if notice := m.controller.Notice(); notice != "" {
			b.WriteString(noticeStyle.Render(notice))
			b.WriteString("\n\n")
		}
		m.renderInputs(&b)
		b.WriteString(labelStyle.Render("enter: sign in · ctrl+r: create account · esc: quit"))

	case portal.StateRegister:
		b.WriteString(titleStyle.Render("Customer Portal — Register"))
		b.WriteString("\n\n")
		m.renderInputs(&b)
		b.WriteString(labelStyle.Render("enter: register · ctrl+l: back to sign in · esc: quit"))

	case portal.StateDashboard:
		m.renderDashboard(&b)
	}

	if errMsg := m.controller.AuthError(); errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderInputs(b *strings.Builder) {
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m model) renderDashboard(b *strings.Builder) {
	profile := m.controller.Profile()
	if profile == nil {
		return
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Welcome, %s (%s)", profile.FullName, profile.CustomerID)))
	b.WriteString("\n")

	for _, tab := range []portal.Tab{portal.TabDashboard, portal.TabQuotes, portal.TabTickets} {
		style := tabStyle
		if tab == m.controller.ActiveTab() {
			style = activeTab
		}
		b.WriteString(style.Render(string(tab)))
	}
	b.WriteString("\n\n")

	switch m.controller.ActiveTab() {
	case portal.TabDashboard:
		b.WriteString(fmt.Sprintf("Quotes: %d · Tickets: %d\n\n", len(m.controller.Quotes()), len(m.controller.Tickets())))
		b.WriteString(labelStyle.Render("Recent quotes"))
		b.WriteString("\n")
		for _, quote := range m.controller.RecentQuotes(3) {
			b.WriteString(fmt.Sprintf("  %s  %-20s %s\n", quote.QuoteID, quote.Service, quote.Status))
		}
		b.WriteString(labelStyle.Render("Recent tickets"))
		b.WriteString("\n")
		for _, ticket := range m.controller.RecentTickets(3) {
			b.WriteString(fmt.Sprintf("  %s  %-20s %s\n", ticket.TicketID, ticket.Subject, ticket.Status))
		}

	case portal.TabQuotes:
		for _, quote := range m.controller.Quotes() {
			b.WriteString(fmt.Sprintf("%s  %-20s %-12s %s\n", quote.QuoteID, quote.Service, quote.Status, quote.Location))
		}
		if len(m.controller.Quotes()) == 0 {
			b.WriteString(labelStyle.Render("No quote requests yet."))
			b.WriteString("\n")
		}

	case portal.TabTickets:
		for _, ticket := range m.controller.Tickets() {
			b.WriteString(fmt.Sprintf("%s  %-20s %-8s %s\n", ticket.TicketID, ticket.Subject, ticket.Priority, ticket.Status))
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("New ticket"))
		b.WriteString("\n")
		m.renderInputs(b)
	}

	if notice := m.controller.Notice(); notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("←/→: switch tab · enter: submit ticket · ctrl+l: logout · esc: quit"))
}
