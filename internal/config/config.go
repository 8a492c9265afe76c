package config

import (
	"fmt"
	"strconv"
	"strings"
)

// padding layouts for the subtitle bands
const (
	PaddingNone         = "none"
	PaddingTopBottom    = "top_bottom"    // English above the picture, Korean below
	PaddingBottomDouble = "bottom_double" // both bands below the picture
)

// Config holds a burn batch: shared options plus the jobs to run
type Config struct {
	Upscale          bool   `yaml:"upscale" toml:"upscale"`
	TargetResolution string `yaml:"target_resolution" toml:"target_resolution"` // e.g. "1920x1080"

	Padding PaddingConfig `yaml:"padding" toml:"padding"`
	Video   VideoConfig   `yaml:"video" toml:"video"`
	Fonts   FontConfig    `yaml:"fonts" toml:"fonts"`

	FixOverlaps bool `yaml:"fix_overlaps" toml:"fix_overlaps"` // write *.fixed.srt copies before burning
	StrictCheck bool `yaml:"strict_check" toml:"strict_check"` // stop the batch on any validation warning

	Jobs []Job `yaml:"jobs" toml:"jobs"`
}

type PaddingConfig struct {
	Mode string `yaml:"mode" toml:"mode"`
	Size int    `yaml:"size" toml:"size"` // pixels per band
}

type VideoConfig struct {
	Codec  string `yaml:"codec" toml:"codec"` // "auto" or an ffmpeg encoder name
	CRF    int    `yaml:"crf" toml:"crf"`
	Preset string `yaml:"preset" toml:"preset"`
}

type FontConfig struct {
	Korean  string `yaml:"korean" toml:"korean"`
	English string `yaml:"english" toml:"english"`
	Size    int    `yaml:"size" toml:"size"` // libass script units
}

// one video with up to two subtitle tracks
type Job struct {
	Video   string `yaml:"video" toml:"video"`
	Korean  string `yaml:"korean" toml:"korean"`
	English string `yaml:"english" toml:"english"`
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Upscale:          false,
		TargetResolution: "1920x1080",
		Padding: PaddingConfig{
			Mode: PaddingTopBottom,
			Size: 180,
		},
		Video: VideoConfig{
			Codec:  "auto",
			CRF:    18,
			Preset: "fast",
		},
		Fonts: FontConfig{
			Korean:  "NanumGothic",
			English: "Arial",
			Size:    18,
		},
		FixOverlaps: true,
		StrictCheck: false,
	}
}

// ParseResolution parses "WIDTHxHEIGHT"
func ParseResolution(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT (e.g. 1920x1080)", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution %q: width and height must be positive", s)
	}
	return w, h, nil
}

// IsValidPaddingMode reports whether mode is a known padding layout
func IsValidPaddingMode(mode string) bool {
	for _, m := range PaddingModes() {
		if m == mode {
			return true
		}
	}
	return false
}

func PaddingModes() []string {
	return []string{PaddingNone, PaddingTopBottom, PaddingBottomDouble}
}
