package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmatthews/ladders/internal/board"
	"github.com/lmatthews/ladders/internal/game"
)

// Watch layout constants
const (
	boardColumns = 10 // Squares per rendered row
	maxLogLines  = 6  // Recent moves shown under the board
	minRate      = 1  // Rolls per second bounds
	maxRate      = 30
)

// WatchConfig holds everything the watch view needs to play one game.
type WatchConfig struct {
	Board  *board.Board
	Die    game.Die
	Rate   int // Rolls per second
	Width  int
	Height int
}

// WatchModel is the Bubble Tea model that plays a single game roll by roll.
type WatchModel struct {
	board *board.Board
	die   game.Die
	theme WatchTheme
	keys  WatchKeyMap
	help  help.Model

	position int
	rolls    int
	lastRoll int
	wasted   bool // Last roll overshot the goal
	recent   []game.Move

	rate     int
	won      bool
	paused   bool
	quitting bool
	width    int
	height   int
}

// NewWatchModel creates a watch model for the given board and die.
func NewWatchModel(cfg WatchConfig) WatchModel {
	rate := cfg.Rate
	if rate < minRate {
		rate = 4
	}
	if rate > maxRate {
		rate = maxRate
	}

	return WatchModel{
		board:  cfg.Board,
		die:    cfg.Die,
		theme:  DefaultWatchTheme(),
		keys:   DefaultWatchKeyMap(),
		help:   help.New(),
		rate:   rate,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Init starts the roll ticker.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.rate)
}

// Update handles messages and advances the game.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		wasWon := m.won
		m.position = 0
		m.rolls = 0
		m.lastRoll = 0
		m.wasted = false
		m.won = false
		m.recent = nil
		if wasWon {
			// The ticker stopped on the win; start it again.
			return m, tickCmd(m.rate)
		}

	case key.Matches(msg, m.keys.Faster):
		if m.rate < maxRate {
			m.rate++
		}

	case key.Matches(msg, m.keys.Slower):
		if m.rate > minRate {
			m.rate--
		}
	}

	return m, nil
}

// handleTick plays one die roll.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.won {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.rate)
	}

	roll := m.die.Roll()
	resolved := m.board.Resolve(m.position, roll)

	m.rolls++
	m.lastRoll = roll
	m.wasted = resolved == m.position
	m.position = resolved

	m.recent = append(m.recent, game.Move{Roll: roll, Square: resolved})
	if len(m.recent) > maxLogLines {
		m.recent = m.recent[len(m.recent)-maxLogLines:]
	}

	if m.position == m.board.Goal() {
		m.won = true
		return m, nil
	}

	return m, tickCmd(m.rate)
}

// View renders the board, HUD, move log, and help line.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Snakes & Ladders"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(m.renderLog())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderBoard draws the boustrophedon grid, top row first.
func (m WatchModel) renderBoard() string {
	goal := m.board.Goal()
	rows := (goal + boardColumns - 1) / boardColumns

	var b strings.Builder
	for row := rows - 1; row >= 0; row-- {
		first := row*boardColumns + 1
		cells := make([]string, 0, boardColumns)
		for col := 0; col < boardColumns; col++ {
			sq := first + col
			if sq > goal {
				break
			}
			cells = append(cells, m.renderCell(sq))
		}
		// Odd rows run right to left on a physical board.
		if row%2 == 1 {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCell styles one square, marking the pawn's position.
func (m WatchModel) renderCell(sq int) string {
	text := fmt.Sprintf("%3d", sq)

	if sq == m.position {
		return m.theme.PawnCell.Render(text)
	}

	switch {
	case sq == m.board.Goal():
		return m.theme.GoalCell.Render(text)
	case m.board.IsLadder(sq):
		return m.theme.LadderCell.Render(text)
	case m.board.IsSnake(sq):
		return m.theme.SnakeCell.Render(text)
	default:
		return m.theme.PlainCell.Render(text)
	}
}

// renderHUD shows the roll counter and current state.
func (m WatchModel) renderHUD() string {
	var parts []string

	parts = append(parts,
		m.theme.HUDLabel.Render("rolls ")+m.theme.HUDValue.Render(fmt.Sprintf("%d", m.rolls)))

	pos := "start"
	if m.position > 0 {
		pos = fmt.Sprintf("%d", m.position)
	}
	parts = append(parts,
		m.theme.HUDLabel.Render("square ")+m.theme.HUDValue.Render(pos))

	if m.lastRoll > 0 {
		parts = append(parts,
			m.theme.HUDLabel.Render("die ")+m.theme.HUDValue.Render(fmt.Sprintf("%d", m.lastRoll)))
	}

	parts = append(parts,
		m.theme.HUDLabel.Render("speed ")+m.theme.HUDValue.Render(fmt.Sprintf("%d/s", m.rate)))

	line := strings.Join(parts, m.theme.HUDLabel.Render("  |  "))

	switch {
	case m.won:
		line += "\n" + m.theme.WinBanner.Render(fmt.Sprintf("Finished game in %d rolls", m.rolls))
	case m.paused:
		line += "\n" + m.theme.HUDOvershoot.Render("paused")
	case m.wasted:
		line += "\n" + m.theme.HUDOvershoot.Render("overshoot - roll wasted")
	default:
		line += "\n"
	}

	return line
}

// renderLog shows the most recent moves.
func (m WatchModel) renderLog() string {
	if len(m.recent) == 0 {
		return ""
	}

	var b strings.Builder
	start := m.rolls - len(m.recent)
	for i, mv := range m.recent {
		b.WriteString(m.theme.LogLine.Render(
			fmt.Sprintf("#%-4d rolled %d -> %d", start+i+1, mv.Roll, mv.Square)))
		b.WriteString("\n")
	}
	return b.String()
}

// Rolls returns the number of rolls taken so far.
func (m WatchModel) Rolls() int {
	return m.rolls
}

// Position returns the pawn's current square (0 = off-board start).
func (m WatchModel) Position() int {
	return m.position
}

// Won reports whether the game has finished.
func (m WatchModel) Won() bool {
	return m.won
}

// RunWatch runs the watch view in the local terminal until the user quits.
func RunWatch(cfg WatchConfig) error {
	p := tea.NewProgram(NewWatchModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: watch view failed: %w", err)
	}
	return nil
}
