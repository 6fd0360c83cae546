package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	listLimit    int
	showLast     bool
	showJSON     bool
	exportFormat string
	exportOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sessions",
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a session's scramble, statistics, repeated move sequences and
the moves with the state each one produced.

Use --last to show the most recent session.`,
	RunE: runShow,
}

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export the moves of a session",
	Long: `Export a session's moves as plain notation (txt) or JSON records.

Examples:
  pocketcube export --last
  pocketcube export <session-id> --format json -o moves.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the summary as JSON")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&showLast, "last", false, "Export the most recent session")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start one with: pocketcube play")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-5s  %s\n", "ID", "Started", "Duration", "Moves", "Scramble")
	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}
		if !s.Ended() {
			duration = "active"
		}

		count, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return err
		}

		scramble := ""
		if s.ScrambleText != nil {
			scramble = *s.ScrambleText
			if len(scramble) > 30 {
				scramble = scramble[:27] + "..."
			}
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-5d  %s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), duration, count, scramble)
	}
	return nil
}

// lookupSession resolves a session from an ID argument or --last.
func lookupSession(repo *storage.SessionRepository, args []string) (*storage.Session, error) {
	var s *storage.Session
	var err error

	switch {
	case showLast:
		s, err = repo.GetLast()
	case len(args) > 0:
		s, err = repo.Get(args[0])
	default:
		return nil, fmt.Errorf("please provide a session ID or use --last")
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("session not found")
	}
	return s, nil
}

func runShow(cmd *cobra.Command, args []string) error {
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
	summary, err := analysis.Summarize(s, records)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, "Session Details")
	fmt.Fprintln(out, "===============")
	fmt.Fprintf(out, "ID:       %s\n", s.SessionID)
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if summary.Scramble != "" {
		fmt.Fprintf(out, "Scramble: %s\n", summary.Scramble)
	}
	fmt.Fprintf(out, "Start:    %s\n", s.StartState)
	if s.Notes != nil {
		fmt.Fprintf(out, "Notes:    %s\n", *s.Notes)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Statistics")
	fmt.Fprintln(out, "----------")
	fmt.Fprintf(out, "Solved:        %v (%s)\n", summary.Solved, summary.FinalPhase)
	fmt.Fprintf(out, "Duration:      %s\n", formatDuration(time.Duration(summary.DurationMs)*time.Millisecond))
	fmt.Fprintf(out, "Moves:         %d (%d simplified, %.0f%% efficient)\n",
		summary.TotalMoves, summary.SimplifiedMoves, summary.Efficiency*100)
	fmt.Fprintf(out, "TPS:           %.2f\n", summary.TPS)
	fmt.Fprintf(out, "Longest pause: %s (%d over %dms)\n",
		formatDuration(time.Duration(summary.LongestPauseMs)*time.Millisecond), summary.PauseCount, analysis.PauseThresholdMs)
	fmt.Fprintln(out)

	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}
	ngrams := analysis.MineNGrams(moves, 2, 6, 3)
	if len(ngrams) > 0 {
		fmt.Fprintln(out, "Repeated sequences")
		fmt.Fprintln(out, "------------------")
		for n := 6; n >= 2; n-- {
			for _, g := range ngrams[n] {
				fmt.Fprintf(out, "  %-20s x%d\n", g.Sequence, g.Count)
			}
		}
		fmt.Fprintln(out)
	}

	if len(records) > 0 {
		fmt.Fprintln(out, "Moves")
		fmt.Fprintln(out, "-----")
		for _, r := range records {
			fmt.Fprintf(out, "%4d  %8s  %-3s  %s\n", r.MoveIndex+1,
				formatDuration(time.Duration(r.TsMs)*time.Millisecond), r.Notation, r.StateText)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
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
	if len(records) == 0 {
		return fmt.Errorf("no moves found for session %s", s.SessionID)
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "txt":
		notations := make([]string, len(records))
		for i, r := range records {
			notations[i] = r.Notation
		}
		output = strings.Join(notations, " ")

	case "json":
		type moveJSON struct {
			MoveIndex int    `json:"move_index"`
			TsMs      int64  `json:"ts_ms"`
			Notation  string `json:"notation"`
			State     string `json:"state"`
		}
		rows := make([]moveJSON, len(records))
		for i, r := range records {
			rows[i] = moveJSON{MoveIndex: r.MoveIndex, TsMs: r.TsMs, Notation: r.Notation, State: r.StateText}
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	out := cmd.OutOrStdout()
	if exportOutput == "" {
		fmt.Fprintln(out, output)
		return nil
	}

	if dir := filepath.Dir(exportOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(out, "Exported %d moves to %s\n", len(records), exportOutput)
	return nil
}
