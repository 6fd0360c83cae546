package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and active session information",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "pocketcube status")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "Config:   %s\n", configPath)
	fmt.Fprintf(out, "Database: %s\n", db.Path())

	version, err := db.CurrentVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Schema:   v%d\n", version)

	repo := storage.NewSessionRepository(db)
	last, err := repo.GetLast()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(out, "Last session: %s\n", last.StartedAt.Local().Format(time.RFC3339))
	}
	fmt.Fprintln(out)

	if id := stateFile.ActiveSessionID(); id != "" {
		fmt.Fprintf(out, "Active session: %s\n", id)
		fmt.Fprintln(out, "  (Use 'pocketcube session move' to continue or 'pocketcube session end' to finish)")
	} else {
		fmt.Fprintln(out, "No active session")
	}
	return nil
}
