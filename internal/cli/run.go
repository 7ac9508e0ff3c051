package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vdir/internal/config"
	"github.com/vvka-141/vdir/internal/files/filesystem"
	"github.com/vvka-141/vdir/internal/logging"
	"github.com/vvka-141/vdir/internal/services"
	"github.com/vvka-141/vdir/internal/ui"
	"github.com/vvka-141/vdir/pkg/vdir"
)

// configDir is where vdir.yaml and .env are looked up.
var configDir = "."

// buildRunConfig resolves configuration and the output path for a run.
func buildRunConfig(args []string, verbose bool, jobID int64) (vdir.RunConfig, *config.Config, error) {
	// Load .env file if it exists (silent fail if not present)
	_ = godotenv.Load(filepath.Join(configDir, ".env"))

	cfg, err := config.Resolve(configDir, os.LookupEnv)
	if err != nil {
		return vdir.RunConfig{}, nil, err
	}

	outputPath := cfg.GeneratedOutputPath(jobID)
	if len(args) > 1 && args[1] != "" {
		outputPath = args[1]
	}

	return vdir.RunConfig{
		ScriptPath: args[0],
		OutputPath: outputPath,
		JobID:      jobID,
		Verbose:    verbose || cfg.Verbose,
	}, cfg, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	start := time.Now()

	runCfg, cfg, err := buildRunConfig(args, getVerboseFlag(cmd), start.UnixMilli())
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(runCfg.Verbose)
	banner := ui.Banner{Styled: ui.StyledOutput(os.Stderr)}
	fsProvider := filesystem.NewOSFileSystem()

	// Nothing is printed or created for a script that does not exist.
	if err := services.CheckScript(fsProvider, runCfg.ScriptPath); err != nil {
		return err
	}

	var console io.Writer
	if cfg.ConsoleEnabled() {
		console = cmd.OutOrStdout()
	}

	logger.Info("%s", banner.Start(runCfg.JobID))
	logger.Verbose("Output file: %s", runCfg.OutputPath)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	interp := services.NewInterpreter(fsProvider, logger, console)
	result, err := interp.Run(ctx, runCfg)

	logger.Info("%s", banner.End(time.Since(start)))

	if result != nil {
		logger.Verbose("%s", banner.Summary(result.String()))
		if err == nil {
			logger.Verbose("%s", banner.Saved(result.OutputPath))
		}
	}
	if errors.Is(err, context.Canceled) {
		logger.Error("Run interrupted")
	}
	return err
}
