// Package tui provides the Bubble Tea terminal browser for the song
// timeline: one record at a time in book order, with character
// filtering and preview playback.
package tui

import (
	"fmt"
	"strings"

	"github.com/calloway/jukebook/internal/config"
	"github.com/calloway/jukebook/internal/model"
	"github.com/calloway/jukebook/internal/player"
	"github.com/calloway/jukebook/internal/view"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	trackStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	filterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// Model is the Bubble Tea model for the browser.
type Model struct {
	state      view.State
	characters []string
	controller *player.Controller
	settings   *config.Settings

	spinner  spinner.Model
	timeline progress.Model

	err   error
	width int
}

// NewModel creates the browser model over a record set. The records
// are presented in the order given; that order is the book's timeline.
func NewModel(settings *config.Settings, records []*model.Mention) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	backend := player.NewExecBackend(settings.PlayerCommand, settings.PlayerArgs)

	m := Model{
		state:      view.NewState(records),
		characters: view.Characters(records),
		controller: player.NewController(backend),
		settings:   settings,
		spinner:    sp,
		timeline:   prog,
	}
	m.loadCurrent()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// playerEventMsg carries one playback resource event.
	playerEventMsg player.Event

	// playerGoneMsg is sent when the resource's event channel closes.
	playerGoneMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.timeline.Width = msg.Width - 20
		if m.timeline.Width > 80 {
			m.timeline.Width = 80
		}
		if m.timeline.Width < 20 {
			m.timeline.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.controller.Close()
			return m, tea.Quit

		case "right", "l":
			m.state = m.state.Next()
			cmds = append(cmds, m.loadCurrent())

		case "left", "h":
			m.state = m.state.Prev()
			cmds = append(cmds, m.loadCurrent())

		case "home", "g":
			m.state = m.state.Seek(0)
			cmds = append(cmds, m.loadCurrent())

		case "end", "G":
			m.state = m.state.Seek(len(m.state.Filtered()) - 1)
			cmds = append(cmds, m.loadCurrent())

		case " ":
			m.err = m.controller.TogglePlayPause()
			cmds = append(cmds, m.listenPlayer())

		case "m":
			m.err = m.controller.ToggleMute()
			cmds = append(cmds, m.listenPlayer())

		case "c":
			m.state = m.state.SetFilter(m.cycleFilter(1))
			cmds = append(cmds, m.loadCurrent())

		case "C":
			m.state = m.state.SetFilter(m.cycleFilter(-1))
			cmds = append(cmds, m.loadCurrent())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case playerEventMsg:
		e := player.Event(msg)
		m.controller.HandleEvent(e)
		if e.Kind == player.EventError {
			m.err = e.Err
		}
		cmds = append(cmds, m.listenPlayer())

	case playerGoneMsg:
		// Resource finished; nothing left to listen to.

	case progress.FrameMsg:
		progressModel, cmd := m.timeline.Update(msg)
		m.timeline = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// loadCurrent binds the playback controller to the record under the
// cursor and animates the timeline bar to the new position. Records
// without a preview leave the controller unplayable.
func (m *Model) loadCurrent() tea.Cmd {
	url := ""
	if current := m.state.Current(); current != nil {
		url = current.PreviewURL
	}
	m.err = m.controller.Load(url)
	return m.timeline.SetPercent(m.position())
}

// listenPlayer waits for the next event from the live playback
// resource. A nil channel (no live resource) yields no command.
func (m Model) listenPlayer() tea.Cmd {
	ch := m.controller.Events()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return playerGoneMsg{}
		}
		return playerEventMsg(e)
	}
}

// cycleFilter returns the filter choice delta steps away from the
// active one, wrapping around the list.
func (m Model) cycleFilter(delta int) string {
	active := 0
	for i, c := range m.characters {
		if c == m.state.Filter() {
			active = i
			break
		}
	}
	n := len(m.characters)
	return m.characters[((active+delta)%n+n)%n]
}

// position is the cursor's fraction of the filtered timeline.
func (m Model) position() float64 {
	n := len(m.state.Filtered())
	if n <= 1 {
		return 0
	}
	return float64(m.state.Index()) / float64(n-1)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♫ Jukebook"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Every song in the book, in order"))
	b.WriteString("\n\n")

	b.WriteString(m.viewFilter())
	b.WriteString("\n")

	filtered := m.state.Filtered()
	if len(filtered) == 0 {
		b.WriteString(dimStyle.Render("No songs for this character."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.timeline.ViewAs(m.position()))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Song %d of %d", m.state.Index()+1, len(filtered))))
		b.WriteString("\n\n")
		b.WriteString(m.viewCurrent())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("←/→: move • space: play/pause • m: mute • c: character • q: quit"))

	return b.String()
}

func (m Model) viewFilter() string {
	var parts []string
	for _, c := range m.characters {
		if c == m.state.Filter() {
			parts = append(parts, filterStyle.Render("["+c+"]"))
		} else {
			parts = append(parts, dimStyle.Render(c))
		}
	}
	return subtitleStyle.Render("Character: ") + strings.Join(parts, "  ")
}

func (m Model) viewCurrent() string {
	current := m.state.Current()
	if current == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(trackStyle.Render(current.Label()))
	b.WriteString("\n")

	if current.Album != "" {
		b.WriteString(infoStyle.Render(current.Album))
		if current.Year > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", current.Year)))
		}
		b.WriteString("\n")
	} else if current.Year > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("(%d)", current.Year)))
		b.WriteString("\n")
	}

	if current.Page > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Page %d", current.Page)))
		b.WriteString("\n")
	}
	if len(current.Characters) > 0 {
		b.WriteString(dimStyle.Render("Mentioned by " + strings.Join(current.Characters, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewPlayback(current))

	return boxStyle.Render(b.String())
}

// viewPlayback renders the playback line. Records without a preview
// clip get the curated fallback link instead of a control.
func (m Model) viewPlayback(current *model.Mention) string {
	if !current.HasPreview() {
		line := dimStyle.Render("No preview available")
		if current.SpotifyURL != "" {
			line += "\n" + infoStyle.Render("Listen instead: "+current.SpotifyURL)
		}
		return line
	}

	var b strings.Builder
	switch m.controller.Status() {
	case player.StatusPlaying:
		b.WriteString(m.spinner.View())
		b.WriteString(subtitleStyle.Render(" Playing"))
	case player.StatusPaused:
		b.WriteString(infoStyle.Render("❚❚ Paused"))
	case player.StatusEnded:
		b.WriteString(dimStyle.Render("■ Ended (space to replay)"))
	default:
		b.WriteString(dimStyle.Render("▶ Press space to play"))
	}
	if m.controller.Muted() {
		b.WriteString(dimStyle.Render("  (muted)"))
	}
	return b.String()
}

// Run starts the browser over the given records.
func Run(settings *config.Settings, records []*model.Mention) error {
	p := tea.NewProgram(NewModel(settings, records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
