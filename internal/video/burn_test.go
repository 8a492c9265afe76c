package video

import (
	"strings"
	"testing"

	"github.com/mgpai22/subburn/internal/config"
)

func testOptions() Options {
	cfg := config.DefaultConfig()
	return Options{
		Upscale:      true,
		TargetWidth:  1920,
		TargetHeight: 1080,
		Padding:      cfg.Padding,
		Video:        cfg.Video,
		Fonts:        cfg.Fonts,
	}
}

func TestBuildPlanUpscaleAndPad(t *testing.T) {
	b := NewBurner(testOptions(), nil)
	job := Job{Video: "/v/ep01.mkv", Korean: "/v/ep01.ko.fixed.srt", English: "/v/ep01.en.fixed.srt"}

	plan, err := b.BuildPlan(job, 1280, 720, "libx264")
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	if plan.Output != "/v/ep01_with_padding.mkv" {
		t.Errorf("unexpected output %q", plan.Output)
	}
	if plan.Width != 1920 || plan.Height != 1440 {
		t.Errorf("expected 1920x1440, got %dx%d", plan.Width, plan.Height)
	}

	// scale, then pad, then English, then Korean
	order := []string{"scale=", "pad=iw:ih+360", "ep01.en.fixed.srt", "ep01.ko.fixed.srt"}
	last := -1
	for _, part := range order {
		idx := strings.Index(plan.Filter, part)
		if idx < 0 {
			t.Fatalf("filter %q missing %q", plan.Filter, part)
		}
		if idx <= last {
			t.Errorf("filter part %q out of order in %q", part, plan.Filter)
		}
		last = idx
	}
}

func TestBuildPlanSkipsUpscaleAtTarget(t *testing.T) {
	b := NewBurner(testOptions(), nil)
	plan, err := b.BuildPlan(Job{Video: "/v/a.mp4", Korean: "/v/a.srt"}, 1920, 1080, "libx264")
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if strings.Contains(plan.Filter, "scale=") {
		t.Errorf("unexpected scale in %q", plan.Filter)
	}
	if strings.Count(plan.Filter, "subtitles=") != 1 {
		t.Errorf("expected a single subtitle track in %q", plan.Filter)
	}
}

func TestBuildPlanNoPadding(t *testing.T) {
	opts := testOptions()
	opts.Upscale = false
	opts.Padding.Mode = config.PaddingNone
	b := NewBurner(opts, nil)

	plan, err := b.BuildPlan(Job{Video: "/v/a.mp4", English: "/v/a.en.srt"}, 1280, 720, "libx264")
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if strings.Contains(plan.Filter, "pad=") {
		t.Errorf("unexpected pad in %q", plan.Filter)
	}
	if plan.Width != 1280 || plan.Height != 720 {
		t.Errorf("expected source size, got %dx%d", plan.Width, plan.Height)
	}
}

func TestBuildPlanRequiresSubtitle(t *testing.T) {
	b := NewBurner(testOptions(), nil)
	if _, err := b.BuildPlan(Job{Video: "/v/a.mp4"}, 1920, 1080, "libx264"); err == nil {
		t.Error("expected error without subtitle tracks")
	}
}

func TestPlanArgs(t *testing.T) {
	b := NewBurner(testOptions(), nil)
	plan, err := b.BuildPlan(Job{Video: "/v/a.mp4", Korean: "/v/a.srt"}, 1920, 1080, "libx264")
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	args := plan.Args()
	joined := strings.Join(args, " ")
	for _, want := range []string{"-i /v/a.mp4", "-c:v libx264", "-c:a copy", "-crf 18", "-preset fast", "-y"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}

	vf := -1
	for i, a := range args {
		if a == "-vf" {
			vf = i
		}
	}
	if vf < 0 || vf+1 >= len(args) || args[vf+1] != plan.Filter {
		t.Errorf("expected filter passed as a single -vf argument, got %q", args)
	}
	if args[len(args)-2] != "/v/a_with_padding.mp4" && args[len(args)-1] != "/v/a_with_padding.mp4" {
		t.Errorf("output path not near end of args: %q", args)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Upscale = true
	cfg.TargetResolution = "1280x720"

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig failed: %v", err)
	}
	if opts.TargetWidth != 1280 || opts.TargetHeight != 720 {
		t.Errorf("unexpected target %dx%d", opts.TargetWidth, opts.TargetHeight)
	}

	cfg.TargetResolution = "bad"
	if _, err := OptionsFromConfig(cfg); err == nil {
		t.Error("expected error for bad resolution")
	}
}
