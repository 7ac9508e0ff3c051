package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vdir/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "vdir <script> [output]",
	Short: "Scripted virtual directory interpreter",
	Long: `vdir reads a script of directory commands, applies them to an in-memory
directory tree, and writes the result of every command to stdout and to an
output file.

Script lines use fixed-width fields:
  columns 1-8    command      dir | mkdir | cd | up | mv | tree
  columns 9-16   source       directory name, 1-6 of [A-Za-z0-9_]
  columns 17-    destination  mv only, backslash-separated (. and .. allowed)

Arguments:
  script    Path to the command script (required)
  output    Path of the result file (default: output_<jobId>.txt)

Configuration:
  An optional vdir.yaml in the working directory sets the output directory,
  the generated name prefix, and whether results are echoed to stdout.
  VDIR_OUTPUT_DIR and VDIR_VERBOSE override it (a .env file is honored).

Exit Codes:
  0  - Script processed
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - Script file does not exist
  15 - Output file could not be written`,
	Args:          RequireScriptPath,
	RunE:          runScript,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		banner := ui.Banner{Styled: ui.StyledOutput(os.Stderr)}
		fmt.Fprintln(os.Stderr, banner.Failure(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
// cmd.Flag also finds the persistent flag before flags are parsed.
func getVerboseFlag(cmd *cobra.Command) bool {
	f := cmd.Flag("verbose")
	if f == nil {
		return false
	}
	verbose, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
