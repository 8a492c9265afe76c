package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse builds a track from SRT content using the strict grammar. Blocks
// without a well-formed timing line are skipped.
func Parse(content string) *Track {
	tok := newTokenizer(ModeStrict)
	raw := tok.scan(content)

	entries := make([]Entry, 0, len(raw))
	for _, c := range raw {
		entries = append(entries, Entry{
			Index:     c.index,
			StartTime: ParseTimestamp(c.start),
			EndTime:   ParseTimestamp(c.end),
			Text:      strings.Join(c.text, "\n"),
		})
	}

	return &Track{Entries: entries}
}

// ParseFile reads and parses an SRT file
func ParseFile(path string) (*Track, error) {
	content, err := readText(path)
	if err != nil {
		return nil, err
	}

	track := Parse(content)
	track.Source = path
	return track, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{File: filepath.Base(path), Err: err}
	}

	content, err := DecodeText(data)
	if err != nil {
		return "", &ReadError{File: filepath.Base(path), Err: err}
	}
	return content, nil
}

// failure while reading or decoding a subtitle file
type ReadError struct {
	File string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.File, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// failure while writing a corrected subtitle file
type WriteError struct {
	File string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.File, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
