package subtitle

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

const noTiming = "no timing"

// Inspect scans SRT content with the lenient grammar and returns warnings
// for malformed timing lines and for cues that overlap the next one.
func Inspect(content string) []string {
	tok := newTokenizer(ModeLenient)
	cues := tok.scan(content)
	warnings := tok.findings

	for i := 0; i < len(cues)-1; i++ {
		cur, next := cues[i], cues[i+1]
		if !cur.timed || !next.timed {
			continue
		}

		curEnd := ParseTimestamp(cur.end)
		nextStart := ParseTimestamp(next.start)
		if curEnd <= nextStart {
			continue
		}

		curLabel, nextLabel := cueLabel(cur, i), cueLabel(next, i+1)
		warnings = append(warnings, fmt.Sprintf(
			"warning: subtitle %s (%s) overlaps next subtitle %s (%s)\n     %s ends: %s, %s starts: %s",
			curLabel, timingLabel(cur),
			nextLabel, timingLabel(next),
			curLabel, cur.end,
			nextLabel, next.start,
		))
	}

	if warnings == nil {
		warnings = []string{}
	}
	return warnings
}

// Validate reads path and reports problems. It never fails: read errors
// come back as a single message.
func Validate(path string) []string {
	content, err := readText(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{fmt.Sprintf("error: file %q not found", path)}
		}
		return []string{fmt.Sprintf("error: %v", err)}
	}
	return Inspect(content)
}

func cueLabel(c rawCue, pos int) string {
	if c.hasIndex {
		return c.index
	}
	return strconv.Itoa(pos)
}

func timingLabel(c rawCue) string {
	if c.timing == "" {
		return noTiming
	}
	return c.timing
}
