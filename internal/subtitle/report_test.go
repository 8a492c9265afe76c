package subtitle

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestInspectReportsOverlapAndMalformedLine(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello

2
00:00:03,000 --> 00:00:05,000
World

3
00:00:06,000 -> bad --> x
Broken

4
00:00:07,000 --> 00:00:08,000
Fine
`

	warnings := Inspect(content)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %q", len(warnings), warnings)
	}

	if !strings.Contains(warnings[0], "line 10") {
		t.Errorf("expected malformed line warning for line 10, got %q", warnings[0])
	}
	overlap := warnings[1]
	for _, want := range []string{
		"subtitle 1 (00:00:01,000 --> 00:00:04,000)",
		"next subtitle 2 (00:00:03,000 --> 00:00:05,000)",
		"1 ends: 00:00:04,000, 2 starts: 00:00:03,000",
	} {
		if !strings.Contains(overlap, want) {
			t.Errorf("overlap warning %q missing %q", overlap, want)
		}
	}
}

func TestInspectCleanTrack(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\n00:00:02,000 --> 00:00:03,000\nB\n"

	warnings := Inspect(content)
	if warnings == nil || len(warnings) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", warnings)
	}
}

func TestInspectCueWithoutIndex(t *testing.T) {
	// a cue without an index line is labelled by its position
	content := "1\n00:00:01,000 --> 00:00:05,000\nA\n\n00:00:04,000 --> 00:00:06,000\nB\n"

	warnings := Inspect(content)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %q", warnings)
	}
	if !strings.Contains(warnings[0], "next subtitle 1 ") {
		t.Errorf("expected positional label for unindexed cue, got %q", warnings[0])
	}
}

func TestInspectAcceptsWideFields(t *testing.T) {
	content := "1\n100:00:01,5 --> 100:00:02,00005\nA\n"
	if warnings := Inspect(content); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %q", warnings)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSRT(t, dir, "eng.srt",
		"\ufeff1\r\n00:00:01,000 --> 00:00:03,000\r\nA\r\n\r\n2\r\n00:00:02,000 --> 00:00:04,000\r\nB\r\n")

	warnings := Validate(path)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %q", warnings)
	}
}

func TestValidateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.srt")

	warnings := Validate(path)
	if len(warnings) != 1 {
		t.Fatalf("expected single error message, got %q", warnings)
	}
	if !strings.Contains(warnings[0], "not found") {
		t.Errorf("expected not-found message, got %q", warnings[0])
	}
}
