package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"1920x1080", 1920, 1080, false},
		{" 1280 x 720 ", 1280, 720, false},
		{"3840X2160", 3840, 2160, false},
		{"1920", 0, 0, true},
		{"axb", 0, 0, true},
		{"0x1080", 0, 0, true},
		{"1920x-1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseResolution(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseResolution(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subburn.yaml")
	content := `upscale: true
target_resolution: 1280x720
padding:
  mode: bottom_double
jobs:
  - video: ep01.mp4
    korean: ep01.ko.srt
    english: /abs/ep01.en.srt
  - video: ep02.mp4
    english: ep02.en.srt
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if !cfg.Upscale || cfg.TargetResolution != "1280x720" {
		t.Errorf("unexpected upscale settings: %v %q", cfg.Upscale, cfg.TargetResolution)
	}
	if cfg.Padding.Mode != PaddingBottomDouble {
		t.Errorf("expected bottom_double, got %q", cfg.Padding.Mode)
	}
	// untouched fields keep their defaults
	if cfg.Padding.Size != 180 || cfg.Video.Codec != "auto" || !cfg.FixOverlaps {
		t.Errorf("defaults not preserved: %+v", cfg)
	}

	wantJobs := []Job{
		{
			Video:   filepath.Join(dir, "ep01.mp4"),
			Korean:  filepath.Join(dir, "ep01.ko.srt"),
			English: "/abs/ep01.en.srt",
		},
		{
			Video:   filepath.Join(dir, "ep02.mp4"),
			English: filepath.Join(dir, "ep02.en.srt"),
		},
	}
	if diff := cmp.Diff(wantJobs, cfg.Jobs); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("jobs: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfigFile(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfigFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subburn.toml")
	content := `fix_overlaps = false

[video]
codec = "libx264"
crf = 22

[[jobs]]
video = "ep01.mp4"
korean = "ep01.ko.srt"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if cfg.FixOverlaps {
		t.Error("expected fix_overlaps = false from TOML")
	}
	if cfg.Video.Codec != "libx264" || cfg.Video.CRF != 22 || cfg.Video.Preset != "fast" {
		t.Errorf("unexpected video config: %+v", cfg.Video)
	}
	want := []Job{{Video: filepath.Join(dir, "ep01.mp4"), Korean: filepath.Join(dir, "ep01.ko.srt")}}
	if diff := cmp.Diff(want, cfg.Jobs); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "subburn.yaml")
	cfg := DefaultConfig()
	cfg.Jobs = []Job{{Video: "/v/a.mp4", Korean: "/v/a.ko.srt"}}

	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("SaveConfigFile failed: %v", err)
	}
	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	tomlPath := filepath.Join(t.TempDir(), "subburn.toml")
	if err := SaveConfigFile(cfg, tomlPath); err != nil {
		t.Fatalf("SaveConfigFile (toml) failed: %v", err)
	}
	loaded, err = LoadConfigFile(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfigFile (toml) failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("toml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Upscale = true
	cfg.TargetResolution = "big"
	cfg.Padding.Mode = "sideways"
	cfg.Video.CRF = 80
	cfg.Jobs = []Job{{Korean: "a.srt"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"invalid resolution", "invalid padding mode", "crf 80", "job 1: video is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestValidateRequiresJobs(t *testing.T) {
	err := DefaultConfig().Validate()
	if err == nil || !strings.Contains(err.Error(), "at least one job") {
		t.Errorf("expected missing jobs error, got %v", err)
	}
}
