package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	if c.Upscale {
		if _, _, err := ParseResolution(c.TargetResolution); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if !IsValidPaddingMode(c.Padding.Mode) {
		errors = append(errors, fmt.Sprintf("invalid padding mode '%s', must be one of: %s",
			c.Padding.Mode, strings.Join(PaddingModes(), ", ")))
	}
	if c.Padding.Mode != PaddingNone && c.Padding.Size <= 0 {
		errors = append(errors, "padding size must be positive")
	}

	if strings.TrimSpace(c.Video.Codec) == "" {
		errors = append(errors, "video codec is required (use \"auto\" to detect)")
	}
	if c.Video.CRF < 0 || c.Video.CRF > 51 {
		errors = append(errors, fmt.Sprintf("crf %d out of range (0-51)", c.Video.CRF))
	}

	if c.Fonts.Size <= 0 {
		errors = append(errors, "font size must be positive")
	}

	if len(c.Jobs) == 0 {
		errors = append(errors, "at least one job is required")
	}
	for i, job := range c.Jobs {
		if job.Video == "" {
			errors = append(errors, fmt.Sprintf("job %d: video is required", i+1))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}
