package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube"
)

var (
	applyFromState    string
	applyFromStickers string
	showNet           bool
	showColor         bool
	projectReference  string
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves and print the resulting state",
	Long: `Apply a move sequence to a cube and print the compact state.

The cube starts solved unless --state or --stickers is given. Moves are
U U' U2 F F' F2 R R' R2, separated by spaces. Moves before an unknown token
stay applied and the state reached so far is still printed.

Examples:
  pocketcube apply R U R' U'
  pocketcube apply --state "0152463 0012021" R'
  pocketcube apply --net "R U"`,
	RunE: runApply,
}

var projectCmd = &cobra.Command{
	Use:   "project <state>",
	Short: "Project a compact state to its sticker grid",
	Long: `Print the 24 stickers of a compact state such as "0152463 0012021".

Use --reference to project under another color scheme, given as the up, front
and right colors of the solved UFR corner (default WGR).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProject,
}

var stickersCmd = &cobra.Command{
	Use:   "stickers <grid>",
	Short: "Convert a sticker grid to a compact state",
	Long: `Read 24 sticker letters in face order U F R D B L, two rows of two per face,
and print the compact state and the reference implied by the fixed DLB corner.

Example:
  pocketcube stickers "WWWW GGGG RRRR YYYY BBBB OOOO"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStickers,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFromState, "state", "", "Start from a compact state")
	applyCmd.Flags().StringVar(&applyFromStickers, "stickers", "", "Start from a sticker grid")
	applyCmd.Flags().BoolVar(&showNet, "net", false, "Print the sticker net")
	applyCmd.Flags().BoolVar(&showColor, "color", false, "Print the net in color")

	rootCmd.AddCommand(projectCmd)
	projectCmd.Flags().StringVar(&projectReference, "reference", "WGR", "Up, front and right colors of the solved UFR corner")
	projectCmd.Flags().BoolVar(&showColor, "color", false, "Print the net in color")

	rootCmd.AddCommand(stickersCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	c := pocketcube.NewCube()

	switch {
	case applyFromState != "" && applyFromStickers != "":
		return fmt.Errorf("use only one of --state and --stickers")
	case applyFromState != "":
		s, err := pocketcube.ParseState(applyFromState)
		if err != nil {
			return err
		}
		if err := c.SetState(s); err != nil {
			return err
		}
	case applyFromStickers != "":
		s, err := pocketcube.ParseStickers(applyFromStickers)
		if err != nil {
			return err
		}
		if err := c.SetStateFromStickers(s); err != nil {
			return err
		}
	}

	alg := strings.Join(args, " ")
	applyErr := c.ApplyNotation(alg)
	logger.Debug("moves applied", "alg", alg, "state", c.String(), "error", applyErr)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.String())
	if err := printNet(out, c.Stickers(), showNet); err != nil {
		return err
	}
	return applyErr
}

func runProject(cmd *cobra.Command, args []string) error {
	s, err := pocketcube.ParseState(strings.Join(args, " "))
	if err != nil {
		return err
	}
	ref, err := pocketcube.ParseReference(projectReference)
	if err != nil {
		return err
	}

	stickers := pocketcube.StickersFromState(s, ref)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, stickers.Compact())
	return printNet(out, stickers, true)
}

func runStickers(cmd *cobra.Command, args []string) error {
	grid, err := pocketcube.ParseStickers(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s, ref, err := pocketcube.StateFromStickers(grid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.String())
	fmt.Fprintf(out, "reference: %s\n", ref)
	return nil
}

func printNet(w io.Writer, s pocketcube.Stickers, plain bool) error {
	switch {
	case showColor:
		r, err := newRenderer()
		if err != nil {
			return err
		}
		fmt.Fprint(w, r.Net(s))
	case plain:
		fmt.Fprint(w, s.String())
	}
	return nil
}
