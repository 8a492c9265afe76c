package video

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

const (
	EncoderAuto     = "auto"
	encoderSoftware = "libx264"
	encoderNVENC    = "h264_nvenc"
)

// SelectEncoder resolves "auto" to NVENC when this ffmpeg build has it and
// to libx264 otherwise. Explicit encoder names pass through.
func SelectEncoder(ctx context.Context, ffmpegPath, requested string) string {
	if !strings.EqualFold(strings.TrimSpace(requested), EncoderAuto) {
		return requested
	}

	cmd := exec.CommandContext(ctx, ffmpegPath, "-hide_banner", "-encoders")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return encoderSoftware
	}
	return chooseEncoder(out.String())
}

func chooseEncoder(encoders string) string {
	for _, line := range strings.Split(encoders, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == encoderNVENC {
			return encoderNVENC
		}
	}
	return encoderSoftware
}

// quality flags differ between software and NVENC encoders
func qualityArgs(encoder string, crf int, preset string) map[string]interface{} {
	if strings.Contains(encoder, "nvenc") {
		// x264 preset names are not valid for NVENC
		return map[string]interface{}{"rc": "vbr", "cq": crf, "preset": "p4"}
	}

	args := map[string]interface{}{"crf": crf}
	if preset != "" {
		args["preset"] = preset
	}
	return args
}
