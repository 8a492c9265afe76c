package subtitle

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const timingArrow = "-->"

var (
	// H:MM:SS,m or HH:MM:SS,mmm on both sides of the arrow
	strictTimingRegex = regexp.MustCompile(
		`^(\d{1,2}:\d{2}:\d{2},\d{1,3})\s*-->\s*(\d{1,2}:\d{2}:\d{2},\d{1,3})`,
	)
	lenientTimingRegex = regexp.MustCompile(
		`^(\d+:\d+:\d+,\d+)\s*-->\s*(\d+:\d+:\d+,\d+)`,
	)
)

// cue as seen by the tokenizer, before timestamps are decoded
type rawCue struct {
	index    string
	hasIndex bool
	timing   string // the raw arrow line
	start    string
	end      string
	timed    bool // start and end matched the grammar
	text     []string
}

type tokenizer struct {
	mode     Mode
	findings []string
}

func newTokenizer(mode Mode) *tokenizer {
	return &tokenizer{mode: mode}
}

func (t *tokenizer) timingRegex() *regexp.Regexp {
	if t.mode == ModeLenient {
		return lenientTimingRegex
	}
	return strictTimingRegex
}

func (t *tokenizer) matchTiming(line string) (start, end string, ok bool) {
	m := t.timingRegex().FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func (t *tokenizer) warnf(format string, args ...interface{}) {
	t.findings = append(t.findings, fmt.Sprintf(format, args...))
}

func (t *tokenizer) scan(content string) []rawCue {
	if t.mode == ModeLenient {
		return t.scanLines(content)
	}
	return t.scanBlocks(content)
}

// strict grammar: blank-line separated blocks, malformed blocks dropped
func (t *tokenizer) scanBlocks(content string) []rawCue {
	var cues []rawCue

	for _, block := range strings.Split(strings.TrimSpace(content), "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			continue
		}

		timingAt := -1
		for i, line := range lines {
			if strings.Contains(line, timingArrow) {
				timingAt = i
				break
			}
		}
		if timingAt < 0 {
			continue
		}

		start, end, ok := t.matchTiming(lines[timingAt])
		if !ok {
			continue
		}

		cues = append(cues, rawCue{
			index:    strings.TrimSpace(lines[0]),
			hasIndex: true,
			timing:   lines[timingAt],
			start:    start,
			end:      end,
			timed:    true,
			text:     lines[timingAt+1:],
		})
	}

	return cues
}

// lenient grammar: line by line, index lines need no preceding blank line
func (t *tokenizer) scanLines(content string) []rawCue {
	var (
		cues    []rawCue
		current rawCue
		started bool
	)

	flush := func() {
		if started {
			cues = append(cues, current)
		}
		current = rawCue{}
		started = false
	}

	for n, line := range strings.Split(content, "\n") {
		lineNum := n + 1
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			flush()

		case strings.Contains(line, timingArrow):
			started = true
			current.timing = line
			start, end, ok := t.matchTiming(line)
			if !ok {
				t.warnf("warning: line %d has a malformed timestamp: %s", lineNum, line)
				continue
			}
			current.start, current.end, current.timed = start, end, true

		case isDigits(line) && !current.hasIndex:
			started = true
			current.index = line
			current.hasIndex = true

		default:
			started = true
			current.text = append(current.text, line)
		}
	}
	flush()

	return cues
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
