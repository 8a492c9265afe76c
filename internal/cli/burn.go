package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mgpai22/subburn/internal/batch"
	"github.com/mgpai22/subburn/internal/config"
	"github.com/mgpai22/subburn/internal/video"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Burn Korean/English subtitles onto videos",
	Long: `Burn subtitles onto one video (--video with --korean and/or --english) or
onto every job listed in a YAML job file (--config).

Each subtitle is first corrected for soft overlaps (disable with --no-fix)
and then checked. A severe overlap stops the whole batch. Remaining warnings
are logged, or stop the batch with --strict.

Examples:
  subburn burn --video ep01.mp4 --korean ep01.ko.srt --english ep01.en.srt
  subburn burn -c season1.yaml --upscale --resolution 1920x1080
  subburn burn --video clip.mkv --english clip.en.srt --padding none`,
	Args: cobra.NoArgs,
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)
	addBurnFlags(burnCmd.Flags())
}

func addBurnFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "YAML job file (default: ./subburn.yaml if present)")
	flags.String("video", "", "Video file for a single job")
	flags.StringP("korean", "k", "", "Korean SRT for the single job")
	flags.StringP("english", "e", "", "English SRT for the single job")
	flags.Bool("upscale", false, "Upscale to --resolution when the source differs")
	flags.StringP("resolution", "r", "1920x1080", "Target resolution for upscaling (WIDTHxHEIGHT)")
	flags.StringP("padding", "p", config.PaddingTopBottom, "Padding layout (none, top_bottom, bottom_double)")
	flags.Int("pad-size", 180, "Height of each padding band in pixels")
	flags.String("codec", "auto", "Video encoder (auto picks h264_nvenc when available, else libx264)")
	flags.Int("crf", 18, "Quality factor passed to the encoder")
	flags.String("preset", "fast", "Encoder preset")
	flags.Int("font-size", 18, "Subtitle font size")
	flags.Bool("no-fix", false, "Do not write overlap-corrected subtitle copies")
	flags.Bool("strict", false, "Stop the batch on any subtitle warning")
}

func runBurn(cmd *cobra.Command, args []string) error {
	cfg, err := loadBurnConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := video.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infow("Starting batch",
		"jobs", len(cfg.Jobs),
		"padding", cfg.Padding.Mode,
		"upscale", cfg.Upscale,
		"fix_overlaps", cfg.FixOverlaps,
	)

	runner := batch.NewRunner(cfg, video.NewBurner(opts, logger), logger)
	report, err := runner.Run(ctx, cfg.Jobs)
	printReport(cmd, report)
	if err != nil {
		return err
	}

	if failed := report.Count(batch.StatusFailed); failed > 0 {
		return fmt.Errorf("%d of %d job(s) failed", failed, len(report.Results))
	}
	return nil
}

// file values first, then any flag the user set explicitly
func loadBurnConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path, _ := flags.GetString("config")
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("upscale") {
		cfg.Upscale, _ = flags.GetBool("upscale")
	}
	if flags.Changed("resolution") {
		cfg.TargetResolution, _ = flags.GetString("resolution")
	}
	if flags.Changed("padding") {
		cfg.Padding.Mode, _ = flags.GetString("padding")
	}
	if flags.Changed("pad-size") {
		cfg.Padding.Size, _ = flags.GetInt("pad-size")
	}
	if flags.Changed("codec") {
		cfg.Video.Codec, _ = flags.GetString("codec")
	}
	if flags.Changed("crf") {
		cfg.Video.CRF, _ = flags.GetInt("crf")
	}
	if flags.Changed("preset") {
		cfg.Video.Preset, _ = flags.GetString("preset")
	}
	if flags.Changed("font-size") {
		cfg.Fonts.Size, _ = flags.GetInt("font-size")
	}
	if noFix, _ := flags.GetBool("no-fix"); noFix {
		cfg.FixOverlaps = false
	}
	if strict, _ := flags.GetBool("strict"); strict {
		cfg.StrictCheck = true
	}

	videoPath, _ := flags.GetString("video")
	if videoPath != "" {
		korean, _ := flags.GetString("korean")
		english, _ := flags.GetString("english")
		cfg.Jobs = []config.Job{{Video: videoPath, Korean: korean, English: english}}
	}

	return cfg, nil
}

func printReport(cmd *cobra.Command, report *batch.Report) {
	if report == nil || len(report.Results) == 0 {
		return
	}

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		output := "-"
		if res.Output != "" {
			output = filepath.Base(res.Output)
		}
		warnings := 0
		for _, w := range res.Warnings {
			warnings += len(w)
		}
		rows = append(rows, []string{
			filepath.Base(res.Job.Video),
			string(res.Status),
			fmt.Sprintf("%d", warnings),
			output,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable([]column{
		{title: "Video"},
		{title: "Status", colors: colorStatus},
		{title: "Warnings", right: true},
		{title: "Output"},
	}, rows, isTerminal(out)))
}
