// Package tui runs a hotseat game session in the terminal. All players share
// one keyboard; the prompt always belongs to the active player.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"colosseum/internal/display"
	"colosseum/internal/engine"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

const helpText = `Commands by phase:
  investing:  buy <id> | expand | ticket | loge | special | medals | pass
  acquiring:  open <batch> <amount> | bid <amount> | pass
  trading:    offer <player> give <bundle> for <bundle> | accept | reject | pass
  producing:  move <noble> | medalmove <noble> | points | produce <id> | pass
  anytime:    cash (medal to coins) | listing | help | quit
A bundle is a comma list of asset names and coin amounts, e.g. torch,lion,3`

type model struct {
	game      *engine.Game
	rng       *rand.Rand
	publish   func(engine.PublicView, []engine.Event)
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

// NewModel builds the session model. publish may be nil when no spectator
// board is attached.
func NewModel(g *engine.Game, rng *rand.Rand, publish func(engine.PublicView, []engine.Event)) model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, or 'help'..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		game:      g,
		rng:       rng,
		publish:   publish,
		textInput: ti,
		gameLog:   helpStyle.Render(helpText) + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			input := m.textInput.Value()
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()
			return m.handleInput(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.55)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, msg.Height-6)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "quit", "/quit":
		return m, tea.Quit
	case "help":
		m.appendLog(helpStyle.Render(helpText))
		return m, nil
	case "listing":
		m.appendLog(display.Listing(m.game.Catalog))
		return m, nil
	}

	// Terminal phase has no active seat to attribute a command to.
	if m.game.Phase.Kind == engine.PhaseGameOver {
		m.appendLog(errStyle.Render("the game is over"))
		return m, nil
	}

	actor := m.game.Phase.Active
	action, err := ParseCommand(input, m.game.Phase, m.rollDie)
	if err != nil {
		m.appendLog(errStyle.Render(err.Error()))
		return m, nil
	}
	// Trade responses come from the trade's target, not the turn holder.
	if m.game.Phase.Kind == engine.PhaseTrading && m.game.Phase.Pending != nil &&
		(action.Type == engine.ActionAcceptTrade || action.Type == engine.ActionRejectTrade) {
		actor = m.game.Phase.Pending.Target
	}

	m.appendLog(promptStyle.Render(fmt.Sprintf("> %s: %s", m.game.Players[actor].Name, input)))

	events, err := m.game.Apply(actor, action)
	if err != nil {
		m.appendLog(errStyle.Render(err.Error()))
		return m, nil
	}
	for _, ev := range events {
		m.appendLog(eventStyle.Render(m.describeEvent(ev)))
	}
	if m.publish != nil {
		m.publish(m.game.PublicView(), events)
	}
	if m.game.Phase.Kind == engine.PhaseGameOver {
		m.appendLog(display.Scoreboard(m.game.Scores))
	}
	return m, nil
}

func (m *model) rollDie() int {
	return m.rng.IntN(6) + 1
}

func (m *model) appendLog(s string) {
	m.gameLog += s + "\n"
	if m.viewport.Width > 0 {
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}
}

func (m model) describeEvent(ev engine.Event) string {
	name := ""
	if ev.Player >= 0 && ev.Player < len(m.game.Players) {
		name = m.game.Players[ev.Player].Name
	}
	switch ev.Type {
	case engine.EventPhaseChange:
		if d, ok := ev.Data.(map[string]interface{}); ok {
			return fmt.Sprintf("— %v —", d["phase"])
		}
		return "— phase change —"
	case engine.EventRoundEnd:
		if d, ok := ev.Data.(map[string]interface{}); ok {
			return fmt.Sprintf("— round %v over —", d["round"])
		}
		return "— round over —"
	case engine.EventGameOver:
		return "— game over —"
	case engine.EventTurnPassed:
		return fmt.Sprintf("%s passes", name)
	default:
		if ev.Data != nil {
			return fmt.Sprintf("%s: %s %v", name, ev.Type, ev.Data)
		}
		return fmt.Sprintf("%s: %s", name, ev.Type)
	}
}

func (m model) View() string {
	if m.width == 0 {
		return "\n  starting...\n"
	}

	logView := m.viewport.View()
	stateView := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, logView, stateView)
	help := helpStyle.Render("Esc to quit. The prompt belongs to the highlighted player.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	g := m.game
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ROUND %d — %s", g.Round, g.Phase.Kind)))
	b.WriteString("\n\n")

	for _, p := range g.Players {
		marker := "  "
		if p.ID == g.Phase.Active && g.Phase.Kind != engine.PhaseGameOver {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %d coins, %d medals, %d pts\n",
			marker, p.Name, p.Coins, p.Medals, p.Score))
		b.WriteString(fmt.Sprintf("   arena %d, podiums %d, tickets %d\n",
			p.ArenaLevel, p.Podiums, p.SeasonTickets))
		if len(p.Assets) > 0 {
			b.WriteString("   " + display.Batch(p.Assets) + "\n")
		}
	}

	b.WriteString("\n" + titleStyle.Render("MARKET") + "\n")
	for i, batch := range g.Market {
		b.WriteString(fmt.Sprintf("#%d %s\n", i, display.Batch(batch)))
	}
	if g.Phase.Kind == engine.PhaseAcquiring && g.Phase.Bidder >= 0 {
		b.WriteString(fmt.Sprintf("\nbatch #%d at %d coins, held by %s\n",
			g.Phase.Batch, g.Phase.Bid, g.Players[g.Phase.Bidder].Name))
	}
	if g.Phase.Kind == engine.PhaseTrading && g.Phase.Pending != nil {
		t := g.Phase.Pending
		b.WriteString(fmt.Sprintf("\n%s offers %s a trade\n",
			g.Players[t.Proposer].Name, g.Players[t.Target].Name))
	}

	stateWidth := int(float64(m.width) * 0.4)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

// Run starts the hotseat session and blocks until it ends.
func Run(g *engine.Game, rng *rand.Rand, publish func(engine.PublicView, []engine.Event)) error {
	p := tea.NewProgram(NewModel(g, rng, publish), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
