package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/render"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	replaySpeed float64
	replayStep  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay a recorded session move by move with its original timing.

Usage:
  pocketcube replay --last              # Replay the most recent session
  pocketcube replay <id> --speed 2.0    # Replay at 2x speed
  pocketcube replay <id> --step         # Step through moves manually`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&showLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

type replayMoveMsg struct{ index int }

type replayModel struct {
	session  *storage.Session
	records  []storage.MoveRecord
	renderer *render.Renderer

	cube     *pocketcube.Cube
	start    pocketcube.State
	index    int
	speed    float64
	stepMode bool
	paused   bool
	quitting bool
	err      error
}

func newReplayModel(s *storage.Session, records []storage.MoveRecord, r *render.Renderer, speed float64, stepMode bool) (*replayModel, error) {
	start, err := pocketcube.ParseState(s.StartState)
	if err != nil {
		return nil, err
	}
	c, err := pocketcube.NewCubeFromState(start)
	if err != nil {
		return nil, err
	}
	return &replayModel{
		session:  s,
		records:  records,
		renderer: r,
		cube:     c,
		start:    start,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
	}, nil
}

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.records) {
		return nil
	}

	var delayMs int64
	if m.index > 0 {
		delayMs = m.records[m.index].TsMs - m.records[m.index-1].TsMs
	}
	delay := time.Duration(float64(delayMs)/m.speed) * time.Millisecond

	index := m.index
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayMoveMsg{index: index}
	})
}

// advance applies the next recorded move.
func (m *replayModel) advance() {
	if m.index >= len(m.records) {
		return
	}
	rec := m.records[m.index]
	mv, err := pocketcube.ParseMove(rec.Notation)
	if err != nil {
		m.err = fmt.Errorf("move %d: %w", rec.MoveIndex, err)
		return
	}
	if err := m.cube.ApplyMove(mv); err != nil {
		m.err = err
		return
	}
	if got := m.cube.String(); got != rec.StateText {
		m.err = fmt.Errorf("move %d: replayed state %s differs from recorded %s", rec.MoveIndex, got, rec.StateText)
	}
	m.index++
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			}

		case "p":
			if !m.stepMode {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNext()
				}
			}

		case "r":
			m.index = 0
			m.err = m.cube.SetState(m.start)
			m.cube.ClearHistory()
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-":
			m.speed = max(m.speed/2, 0.25)
		}

	case replayMoveMsg:
		// Ticks from before a pause or reset are stale.
		if !m.paused && msg.index == m.index {
			m.advance()
			if m.err != nil {
				m.paused = true
				return m, nil
			}
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Session Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.records))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	fmt.Fprintf(&b, " (%.2gx speed)\n\n", m.speed)

	b.WriteString(m.renderer.Net(m.cube.Stickers()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "State: %s  Phase: %s\n", m.cube.String(), phaseStyle.Render(m.cube.DetectPhase().DisplayName()))
	if m.index > 0 {
		fmt.Fprintf(&b, "Time: %s\n", formatDuration(time.Duration(m.records[m.index-1].TsMs)*time.Millisecond))
		b.WriteString(moveStyle.Render(pocketcube.FormatMoves(m.cube.Moves())))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

func runReplay(cmd *cobra.Command, args []string) error {
	if replaySpeed <= 0 {
		return fmt.Errorf("speed must be positive")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := lookupSession(storage.NewSessionRepository(db), args)
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	r, err := newRenderer()
	if err != nil {
		return err
	}
	model, err := newReplayModel(s, records, r, replaySpeed, replayStep)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}
