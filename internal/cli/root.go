package cli

import (
	"github.com/mgpai22/subburn/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subburn",
	Short: "Burn bilingual subtitles onto videos",
	Long: `Subburn burns Korean and English SRT subtitles onto video files
with ffmpeg, optionally upscaling and adding black bands to hold the text.

Before burning, subtitle tracks are checked for overlapping cues. Soft
overlaps are clipped automatically; severe overlaps stop the batch so the
file can be fixed by hand.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
