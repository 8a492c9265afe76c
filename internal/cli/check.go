package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgpai22/subburn/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Report overlapping cues and malformed timestamps",
	Long: `Check one or more SRT files for cues that overlap the next cue and for
timing lines that cannot be parsed. Files are never modified.

Exits with status 1 when any file has warnings.

Examples:
  subburn check movie.ko.srt movie.en.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	total := 0

	for _, path := range args {
		warnings := subtitle.Validate(path)
		total += len(warnings)
		logger.Debugw("Checked subtitle", "file", path, "warnings", len(warnings))

		printWarnings(out, path, warnings, isTerminal(out))
	}

	if total > 0 {
		return fmt.Errorf("found %d warning(s) in %d file(s)", total, len(args))
	}
	return nil
}

func printWarnings(out io.Writer, path string, warnings []string, pretty bool) {
	name := filepath.Base(path)
	if len(warnings) == 0 {
		fmt.Fprintf(out, "%s: ok\n", name)
		return
	}

	if !pretty {
		for _, w := range warnings {
			fmt.Fprintf(out, "%s: %s\n", name, strings.ReplaceAll(w, "\n", " "))
		}
		return
	}

	rows := make([][]string, 0, len(warnings))
	for i, w := range warnings {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), w})
	}
	columns := []column{{title: "#", right: true}, {title: "Warning"}}
	fmt.Fprintf(out, "%s\n%s\n", name, renderTable(columns, rows, true))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
