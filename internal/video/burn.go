package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/mgpai22/subburn/internal/config"
	ffmpegbin "github.com/mgpai22/subburn/internal/ffmpeg"
	"github.com/mgpai22/subburn/internal/logging"
)

// holds options shared by every burn in a batch
type Options struct {
	Upscale      bool
	TargetWidth  int
	TargetHeight int
	Padding      config.PaddingConfig
	Video        config.VideoConfig
	Fonts        config.FontConfig
}

// builds Options from a validated config
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := Options{
		Upscale: cfg.Upscale,
		Padding: cfg.Padding,
		Video:   cfg.Video,
		Fonts:   cfg.Fonts,
	}
	if cfg.Upscale {
		w, h, err := config.ParseResolution(cfg.TargetResolution)
		if err != nil {
			return Options{}, err
		}
		opts.TargetWidth, opts.TargetHeight = w, h
	}
	return opts, nil
}

// video plus the subtitle tracks to burn onto it
type Job struct {
	Video   string
	Korean  string
	English string
}

// everything needed to run one ffmpeg invocation
type Plan struct {
	Input   string
	Output  string
	Filter  string
	Encoder string
	Width   int // after upscaling, before padding
	Height  int // after padding
	kwargs  ffmpeg.KwArgs
}

type BurnResult struct {
	Output  string
	Encoder string
	Width   int
	Height  int
}

// burns subtitles with ffmpeg
type Burner struct {
	opts   Options
	logger *logging.Logger
}

func NewBurner(opts Options, logger *logging.Logger) *Burner {
	return &Burner{opts: opts, logger: logging.OrNop(logger)}
}

// BuildPlan computes the filter graph and encoder flags for a job on a
// source of the given resolution.
func (b *Burner) BuildPlan(job Job, srcWidth, srcHeight int, encoder string) (*Plan, error) {
	if job.Korean == "" && job.English == "" {
		return nil, fmt.Errorf("%s: at least one subtitle track is required", filepath.Base(job.Video))
	}

	width, height := srcWidth, srcHeight
	var filters []string

	if b.opts.Upscale && (srcWidth != b.opts.TargetWidth || srcHeight != b.opts.TargetHeight) {
		filters = append(filters, UpscaleFilter(b.opts.TargetWidth, b.opts.TargetHeight))
		width, height = b.opts.TargetWidth, b.opts.TargetHeight
	}

	mode := b.opts.Padding.Mode
	if pad := PadFilter(mode, b.opts.Padding.Size); pad != "" {
		filters = append(filters, pad)
	}

	placement := Layout(mode, b.opts.Padding.Size, height, b.opts.Fonts)
	if job.English != "" {
		filters = append(filters, SubtitleFilter(job.English, placement.English))
	}
	if job.Korean != "" {
		filters = append(filters, SubtitleFilter(job.Korean, placement.Korean))
	}

	finalHeight := height
	if mode == config.PaddingTopBottom || mode == config.PaddingBottomDouble {
		finalHeight += 2 * b.opts.Padding.Size
	}

	filter := strings.Join(filters, ",")
	kwargs := ffmpeg.KwArgs{
		"vf":  filter,
		"c:v": encoder,
		"c:a": "copy",
	}
	for k, v := range qualityArgs(encoder, b.opts.Video.CRF, b.opts.Video.Preset) {
		kwargs[k] = v
	}

	return &Plan{
		Input:   job.Video,
		Output:  OutputPath(job.Video, mode),
		Filter:  filter,
		Encoder: encoder,
		Width:   width,
		Height:  finalHeight,
		kwargs:  kwargs,
	}, nil
}

// ffmpeg arguments for the plan, without the binary
func (p *Plan) Args() []string {
	return ffmpeg.Input(p.Input).
		Output(p.Output, p.kwargs).
		OverWriteOutput().
		GetArgs()
}

// Burn probes the source, runs ffmpeg and checks the output is non-empty
func (b *Burner) Burn(ctx context.Context, job Job) (*BurnResult, error) {
	name := filepath.Base(job.Video)
	log := b.logger.With("video", name)

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	srcWidth, srcHeight, err := GetResolution(ctx, job.Video)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read resolution: %w", name, err)
	}

	encoder := SelectEncoder(ctx, ffmpegPath, b.opts.Video.Codec)
	plan, err := b.BuildPlan(job, srcWidth, srcHeight, encoder)
	if err != nil {
		return nil, err
	}

	log.Infow("Burning subtitles",
		"source", fmt.Sprintf("%dx%d", srcWidth, srcHeight),
		"output", filepath.Base(plan.Output),
		"encoder", plan.Encoder,
	)
	log.Debugw("Filter graph", "vf", plan.Filter)

	if err := os.Remove(plan.Output); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing output: %w", err)
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, plan.Args()...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: ffmpeg failed (encoder %s): %w\n%s",
			name, plan.Encoder, err, tail(out, 20))
	}

	info, err := os.Stat(plan.Output)
	if err != nil || info.Size() == 0 {
		return nil, fmt.Errorf("%s: ffmpeg produced no output", name)
	}

	return &BurnResult{
		Output:  plan.Output,
		Encoder: plan.Encoder,
		Width:   plan.Width,
		Height:  plan.Height,
	}, nil
}

// last n lines of ffmpeg's output
func tail(out []byte, n int) string {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
