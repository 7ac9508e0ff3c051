package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireScriptPath validates that a script path, and at most one output
// path, are provided. Returns a helpful error message with usage and
// examples if the script is missing.
func RequireScriptPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <script>

Usage: %s

Example:
  %s ./commands.txt results.txt`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts between 1 and 2 arg(s), received %d", len(args))
	}
	return nil
}
