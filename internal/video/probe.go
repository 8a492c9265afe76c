package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	ffmpegbin "github.com/mgpai22/subburn/internal/ffmpeg"
)

// JSON output from ffprobe
type ffprobeOutput struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

// width and height of the first video stream
func GetResolution(ctx context.Context, path string) (int, int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, 0, fmt.Errorf("video file not found: %s", path)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return 0, 0, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "json",
		path,
	)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, 0, fmt.Errorf("ffprobe failed: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return parseResolution(out.Bytes())
}

func parseResolution(data []byte) (int, int, error) {
	var probe ffprobeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if len(probe.Streams) == 0 {
		return 0, 0, fmt.Errorf("no video stream found")
	}

	s := probe.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid video resolution %dx%d", s.Width, s.Height)
	}
	return s.Width, s.Height, nil
}
