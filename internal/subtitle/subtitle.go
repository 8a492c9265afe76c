package subtitle

import (
	"time"
)

// represents single subtitle cue
type Entry struct {
	Index     string // raw label from the file, never renumbered
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents complete subtitle track read from one file
type Track struct {
	Entries []Entry
	Source  string
}

// tokenizer strictness
type Mode int

const (
	// malformed blocks are dropped without a trace
	ModeStrict Mode = iota
	// malformed lines produce warnings and scanning continues
	ModeLenient
)

// derives the corrected file path from the input path
type OutputPathFunc func(input string) string

// interface for writing subtitle tracks to files
type Writer interface {
	Write(track *Track, path string) error
}
