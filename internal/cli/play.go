package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/render"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	playScramble    string
	playScrambleLen int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve scrambles interactively",
	Long: `Start an interactive TUI that scrambles the cube and records your solve.

Keys:
  u f r   - turn U, F or R clockwise
  U F R   - turn counter-clockwise
  1 2 3   - U2, F2, R2
  n       - new scramble
  e       - give up the current session
  q/Esc   - quit

The session ends by itself when the cube is solved.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playScramble, "scramble", "", "Use this scramble instead of a random one")
	playCmd.Flags().IntVar(&playScrambleLen, "length", 11, "Random scramble length")
}

var keyMoves = map[string]pocketcube.Move{
	"u": pocketcube.U, "U": pocketcube.UPrime, "1": pocketcube.U2,
	"f": pocketcube.F, "F": pocketcube.FPrime, "2": pocketcube.F2,
	"r": pocketcube.R, "R": pocketcube.RPrime, "3": pocketcube.R2,
}

type tickMsg time.Time

type playModel struct {
	db        *storage.DB
	stateFile *recorder.StateFile
	renderer  *render.Renderer
	opts      []pocketcube.Option

	session     *recorder.Session
	scramble    string
	scrambleLen int
	fixed       bool

	elapsed  time.Duration
	lastID   string
	err      error
	quitting bool
}

func newPlayModel(db *storage.DB, stateFile *recorder.StateFile, r *render.Renderer, scramble string, scrambleLen int, opts ...pocketcube.Option) *playModel {
	return &playModel{
		db:          db,
		stateFile:   stateFile,
		renderer:    r,
		opts:        opts,
		scramble:    scramble,
		scrambleLen: scrambleLen,
		fixed:       scramble != "",
	}
}

// start opens a new recorded session on a fresh scramble.
func (m *playModel) start() error {
	if m.session != nil && m.session.State() == recorder.StateRecording {
		if err := m.session.End(); err != nil {
			return err
		}
	}
	if !m.fixed {
		m.scramble = pocketcube.FormatMoves(pocketcube.RandomScramble(nil, m.scrambleLen))
	}

	m.session = recorder.NewSession(m.db, m.stateFile, logger, m.opts...)
	id, err := m.session.Start(m.scramble, "")
	if err != nil {
		return err
	}
	m.lastID = id
	m.elapsed = 0
	return nil
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.session != nil && m.session.State() == recorder.StateRecording {
				if err := m.session.End(); err != nil {
					m.err = err
				}
			}
			return m, tea.Quit

		case "n":
			m.err = m.start()

		case "e":
			if m.session.State() == recorder.StateRecording {
				m.err = m.session.End()
			}

		default:
			if mv, ok := keyMoves[key]; ok && m.session.State() == recorder.StateRecording {
				m.err = m.session.ApplyMove(mv)
			}
		}

	case tickMsg:
		if m.session != nil && m.session.State() == recorder.StateRecording {
			m.elapsed = time.Duration(m.session.ElapsedMs()) * time.Millisecond
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pocket Cube"))
	b.WriteString("\n\n")

	c := m.session.Cube()
	b.WriteString(statusStyle.Render("Scramble: " + m.scramble))
	b.WriteString("\n\n")
	b.WriteString(m.renderer.Net(c.Stickers()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "State: %s\n", c.String())

	switch m.session.State() {
	case recorder.StateRecording:
		fmt.Fprintf(&b, "Time: %s  Phase: %s\n", formatDuration(m.elapsed), phaseStyle.Render(c.DetectPhase().DisplayName()))
	case recorder.StateEnded:
		if c.IsSolved() {
			b.WriteString(phaseStyle.Render(fmt.Sprintf("SOLVED in %d moves (%s)", m.session.MoveCount(), formatDuration(m.elapsed))))
		} else {
			b.WriteString(statusStyle.Render("Session ended unsolved"))
		}
		b.WriteString("\n")
	}

	moves := c.Moves()
	fmt.Fprintf(&b, "Moves: %d\n", m.session.MoveCount())
	if len(moves) > 0 {
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(pocketcube.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u/f/r=turn  U/F/R=prime  1/2/3=double  n=new  e=give up  q=quit"))
	b.WriteString("\n")
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playScramble == "" && playScrambleLen <= 0 {
		return fmt.Errorf("--length must be positive, got %d", playScrambleLen)
	}
	if playScramble != "" {
		if _, err := pocketcube.ParseMoves(playScramble); err != nil {
			return fmt.Errorf("invalid scramble: %w", err)
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}
	if stateFile.HasActiveSession() {
		return fmt.Errorf("active session already in progress: %s\nUse 'pocketcube session end' to finish it first", stateFile.ActiveSessionID())
	}

	r, err := newRenderer()
	if err != nil {
		return err
	}

	model := newPlayModel(db, stateFile, r, playScramble, playScrambleLen, pocketcube.WithHistoryLimit(cfg.HistoryLimit))
	if err := model.start(); err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Last session: %s\n", model.lastID)
	return nil
}
