package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fixedMarker = "fixed"

// SubRip format, BOM-prefixed UTF-8
type SRTWriter struct{}

func NewWriter() Writer {
	return &SRTWriter{}
}

// Serialize renders the track in SRT form, keeping index labels verbatim
func Serialize(track *Track) string {
	var sb strings.Builder
	for _, entry := range track.Entries {
		sb.WriteString(entry.Index)
		sb.WriteString("\n")

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(entry.StartTime),
			FormatTimestamp(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// writes the track to an SRT file
func (w *SRTWriter) Write(track *Track, path string) error {
	data, err := EncodeText(Serialize(track))
	if err != nil {
		return &WriteError{File: filepath.Base(path), Err: err}
	}

	if err := ensureDir(path); err != nil {
		return &WriteError{File: filepath.Base(path), Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{File: filepath.Base(path), Err: err}
	}
	return nil
}

// FixedPath inserts the ".fixed" marker before the extension:
// "movie.ko.srt" becomes "movie.ko.fixed.srt".
func FixedPath(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + "." + fixedMarker + ext
}

// InDir keeps the ".fixed" naming but places the file in dir
func InDir(dir string) OutputPathFunc {
	return func(input string) string {
		return filepath.Join(dir, filepath.Base(FixedPath(input)))
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
