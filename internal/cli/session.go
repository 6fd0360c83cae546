package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	sessionNotes    string
	sessionScramble string
	sessionRandom   int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Record a practice session from the command line",
	Long: `Start a session from a scramble, feed it moves across several invocations
and end it. A session ends by itself once the cube is solved. Use 'play' for
the interactive version.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	RunE:  runSessionStart,
}

var sessionMoveCmd = &cobra.Command{
	Use:   "move <moves...>",
	Short: "Apply moves to the active session",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSessionMove,
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session",
	RunE:  runSessionEnd,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.AddCommand(sessionStartCmd)
	sessionStartCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes for this session")
	sessionStartCmd.Flags().StringVar(&sessionScramble, "scramble", "", "Scramble sequence")
	sessionStartCmd.Flags().IntVar(&sessionRandom, "random", 0, "Generate a random scramble of this many moves")

	sessionCmd.AddCommand(sessionMoveCmd)
	sessionCmd.AddCommand(sessionEndCmd)
}

func runSessionStart(cmd *cobra.Command, args []string) error {
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

	scramble := sessionScramble
	if sessionRandom > 0 {
		if scramble != "" {
			return fmt.Errorf("use only one of --scramble and --random")
		}
		scramble = pocketcube.FormatMoves(pocketcube.RandomScramble(nil, sessionRandom))
	}

	session := recorder.NewSession(db, stateFile, logger, pocketcube.WithHistoryLimit(cfg.HistoryLimit))
	id, err := session.Start(scramble, sessionNotes)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Started session: %s\n", id)
	if scramble != "" {
		fmt.Fprintf(out, "Scramble: %s\n", scramble)
	}
	fmt.Fprintf(out, "State: %s\n", session.Cube().String())
	return nil
}

func resumeActive(db *storage.DB) (*recorder.Session, error) {
	stateFile, err := openStateFile()
	if err != nil {
		return nil, err
	}
	if !stateFile.HasActiveSession() {
		return nil, fmt.Errorf("no active session in progress")
	}

	session := recorder.NewSession(db, stateFile, logger, pocketcube.WithHistoryLimit(cfg.HistoryLimit))
	if err := session.Resume(stateFile.ActiveSessionID()); err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	return session, nil
}

func runSessionMove(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resumeActive(db)
	if err != nil {
		return err
	}

	moveErr := session.ApplyNotation(strings.Join(args, " "))

	out := cmd.OutOrStdout()
	c := session.Cube()
	fmt.Fprintf(out, "State: %s (%s)\n", c.String(), c.DetectPhase().DisplayName())
	if session.State() == recorder.StateEnded {
		fmt.Fprintf(out, "Solved in %d moves\n", session.MoveCount())
	}
	return moveErr
}

func runSessionEnd(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := resumeActive(db)
	if err != nil {
		return err
	}
	if err := session.End(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	stored, err := storage.NewSessionRepository(db).Get(session.SessionID())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session ended: %s\n", session.SessionID())
	if stored != nil && stored.DurationMs != nil {
		fmt.Fprintf(out, "Duration: %s\n", formatDuration(time.Duration(*stored.DurationMs)*time.Millisecond))
	}
	fmt.Fprintf(out, "Moves: %d\n", session.MoveCount())
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}
