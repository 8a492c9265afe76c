package subtitle

import (
	"fmt"
	"time"
)

// SevereOverlapError reports a cue that still ends after the next cue ends,
// which clipping cannot repair.
type SevereOverlapError struct {
	File      string
	Index     string
	StartTime time.Duration
	EndTime   time.Duration
	NextIndex string
}

func (e *SevereOverlapError) Error() string {
	return fmt.Sprintf(
		"severe subtitle overlap in %q: cue %s (%s --> %s) ends after the end of cue %s; fix its end time manually",
		e.File,
		e.Index,
		FormatTimestamp(e.StartTime),
		FormatTimestamp(e.EndTime),
		e.NextIndex,
	)
}

// Resolve clips every cue that runs into the next cue's start, then checks
// the corrected track for pairs clipping could not fix. Entries are mutated
// in place. On a severe overlap the track is left clipped and must not be
// written.
func Resolve(track *Track) (int, error) {
	entries := track.Entries
	if len(entries) < 2 {
		return 0, nil
	}

	originalEnds := make([]time.Duration, len(entries))
	for i := range entries {
		originalEnds[i] = entries[i].EndTime
	}

	fixed := 0
	for i := 0; i < len(entries)-1; i++ {
		if entries[i].EndTime > entries[i+1].StartTime {
			entries[i].EndTime = entries[i+1].StartTime
			fixed++
		}
	}

	for i := 0; i < len(entries)-1; i++ {
		cur, next := entries[i], entries[i+1]
		if originalEnds[i] > originalEnds[i+1] || cur.EndTime > next.EndTime {
			return fixed, &SevereOverlapError{
				File:      baseName(track.Source),
				Index:     cur.Index,
				StartTime: cur.StartTime,
				EndTime:   cur.EndTime,
				NextIndex: next.Index,
			}
		}
	}

	return fixed, nil
}
