package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/subburn/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [job_file]",
	Short: "Write a job file with the default settings",
	Long: `Write a job file holding every setting at its default value and one
example job, ready to edit. The format follows the extension: .toml writes
TOML, anything else YAML. Defaults to ./subburn.yaml.

Examples:
  subburn init
  subburn init season1.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().
		BoolP("force", "f", false, "Overwrite an existing job file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "subburn.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	cfg.Jobs = []config.Job{{
		Video:   "episode01.mp4",
		Korean:  "episode01.ko.srt",
		English: "episode01.en.srt",
	}}

	if err := config.SaveConfigFile(cfg, path); err != nil {
		return err
	}
	logger.Debugw("Wrote job file", "path", path)

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
