package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

const (
	ffmpegEnv  = "SUBBURN_FFMPEG_PATH"
	ffprobeEnv = "SUBBURN_FFPROBE_PATH"
)

var ErrNotFound = errors.New("ffmpeg binaries not found")

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// resolves both binaries once per process
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = locate(os.Getenv, exec.LookPath)
	})
	return ensurePath, ensureErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

// env overrides win, then PATH
func locate(
	getenv func(string) string,
	lookPath func(string) (string, error),
) (BinaryPaths, error) {
	paths := BinaryPaths{
		FFmpeg:  getenv(ffmpegEnv),
		FFprobe: getenv(ffprobeEnv),
	}

	if paths.FFmpeg == "" {
		if found, err := lookPath("ffmpeg"); err == nil {
			paths.FFmpeg = found
		}
	}
	if paths.FFprobe == "" {
		if found, err := lookPath("ffprobe"); err == nil {
			paths.FFprobe = found
		}
	}

	var missing []string
	if paths.FFmpeg == "" {
		missing = append(missing, "ffmpeg")
	}
	if paths.FFprobe == "" {
		missing = append(missing, "ffprobe")
	}
	if len(missing) > 0 {
		return BinaryPaths{}, fmt.Errorf(
			"%w: install %v or set %s/%s",
			ErrNotFound, missing, ffmpegEnv, ffprobeEnv,
		)
	}

	return paths, nil
}
