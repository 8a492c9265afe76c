package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/subburn/internal/subtitle"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix [subtitle_file...]",
	Short: "Write overlap-corrected copies of SRT files",
	Long: `Clip cues that run into the next cue and write the result next to the
input as NAME.fixed.srt (or into --output-dir). Index labels and text are
kept as they are. The output is UTF-8 with a byte-order mark.

A cue that still ends after the next cue ends is a severe overlap: nothing
is written for that file and the command stops.

Examples:
  subburn fix movie.ko.srt
  subburn fix *.srt --output-dir fixed/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().
		StringP("output-dir", "d", "", "Directory for corrected files (default: next to each input)")
}

func runFix(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output-dir")

	corrector := subtitle.NewCorrector(logger)
	if outputDir != "" {
		corrector.OutputPath = subtitle.InDir(outputDir)
	}

	for _, path := range args {
		res, err := corrector.Correct(path)
		if err != nil {
			return err
		}

		if res.Path == path {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no subtitle entries, left unchanged\n", filepath.Base(path))
			continue
		}
		absOutput, _ := filepath.Abs(res.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d of %d cues fixed)\n",
			filepath.Base(path), absOutput, res.Fixed, res.Entries)
	}
	return nil
}
