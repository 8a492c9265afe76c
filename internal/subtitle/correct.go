package subtitle

import (
	"path/filepath"

	"github.com/mgpai22/subburn/internal/logging"
)

// outcome of a successful correction
type Result struct {
	Path    string // corrected file, or the input when the track is empty
	Fixed   int    // cues whose end time was clipped
	Entries int
}

// runs parse, resolve and serialize for one file
type Corrector struct {
	OutputPath OutputPathFunc
	Writer     Writer
	Logger     *logging.Logger
}

func NewCorrector(logger *logging.Logger) *Corrector {
	return &Corrector{
		OutputPath: FixedPath,
		Writer:     NewWriter(),
		Logger:     logger,
	}
}

// Correct writes a corrected copy of the SRT file at path and returns where
// it went. A severe overlap aborts before anything is written.
func (c *Corrector) Correct(path string) (*Result, error) {
	log := logging.OrNop(c.Logger).With("file", filepath.Base(path))

	track, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	if len(track.Entries) == 0 {
		log.Debugw("No subtitle entries, keeping original")
		return &Result{Path: path}, nil
	}

	fixed, err := Resolve(track)
	if err != nil {
		log.Errorw("Severe subtitle overlap", "error", err)
		return nil, err
	}

	outputFn := c.OutputPath
	if outputFn == nil {
		outputFn = FixedPath
	}
	writer := c.Writer
	if writer == nil {
		writer = NewWriter()
	}

	outputPath := outputFn(path)
	if err := writer.Write(track, outputPath); err != nil {
		return nil, err
	}

	if fixed > 0 {
		log.Infow("Fixed subtitle overlaps",
			"fixed", fixed,
			"output", filepath.Base(outputPath),
		)
	} else {
		log.Infow("Re-encoded subtitle without overlap fixes",
			"output", filepath.Base(outputPath),
		)
	}

	return &Result{
		Path:    outputPath,
		Fixed:   fixed,
		Entries: len(track.Entries),
	}, nil
}

// Correct uses the default ".fixed" output naming and no logging
func Correct(path string) (*Result, error) {
	return NewCorrector(nil).Correct(path)
}
