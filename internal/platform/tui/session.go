package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel manages the full session flow: setup -> match -> setup.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	settings Settings
	setup    SetupModel
	play     *MatchModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(settings Settings) SessionModel {
	settings = settings.withDefaults()
	return SessionModel{
		settings: settings,
		setup:    NewSetupModel(settings.Defaults, settings.Width, settings.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.settings.Width = wsm.Width
		m.settings.Height = wsm.Height
	}

	if m.play != nil {
		return m.updateMatch(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates on the setup screen.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.setup.Selected(); sel != nil {
		play, err := NewMatchModel(*sel, m.settings)
		if err != nil {
			// Setup only offers registered strategies and positive rounds.
			m.settings.Logger.Error("cannot start match", "error", err)
			m.setup = NewSetupModel(m.settings.Defaults, m.settings.Width, m.settings.Height)
			return m, nil
		}
		// Keep the choices for the next visit to the setup screen.
		m.settings.Defaults = Defaults{One: sel.One.ID, Two: sel.Two.ID, Rounds: sel.Rounds}
		m.play = &play
		return m, m.play.Init()
	}

	return m, cmd
}

// updateMatch handles updates while a match is on screen.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if play, ok := newModel.(MatchModel); ok {
		m.play = &play
	}

	if m.play.BackToMenu() {
		m.play = nil
		m.setup = NewSetupModel(m.settings.Defaults, m.settings.Width, m.settings.Height)
		return m, m.setup.Init()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.play != nil {
		return m.play.View()
	}
	return m.setup.View()
}

// Run runs a local session in the alternate screen.
func Run(settings Settings) error {
	p := tea.NewProgram(
		NewSessionModel(settings),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
