package video

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/subburn/internal/config"
)

// libass renders SRT input on a 288-line script canvas
const scriptHeight = 288

// ASS alignment codes (numpad layout)
const (
	alignBottomCenter = 2
	alignTopCenter    = 8
)

// force_style overrides for one subtitle track
type Style struct {
	FontName  string
	FontSize  int
	Alignment int
	MarginV   int
}

func (s Style) String() string {
	return fmt.Sprintf(
		"FontName=%s,Fontsize=%d,Alignment=%d,MarginV=%d,Bold=1,Outline=3,Shadow=0",
		s.FontName, s.FontSize, s.Alignment, s.MarginV,
	)
}

// escapes a path for use inside a quoted filter argument
func EscapeFilterPath(path string) string {
	path = filepath.ToSlash(path)
	return strings.NewReplacer(`\`, `\\`, `:`, `\:`, `'`, `\'`).Replace(path)
}

// scales into w x h keeping the aspect ratio, then centres on black
func UpscaleFilter(w, h int) string {
	return fmt.Sprintf(
		"scale='min(%[1]d,iw*min(%[2]d/ih,%[1]d/iw))':'min(%[2]d,ih*min(%[2]d/ih,%[1]d/iw))',"+
			"pad=%[1]d:%[2]d:(ow-iw)/2:(oh-ih)/2:black",
		w, h,
	)
}

// black bands for the subtitle text; empty when mode is none
func PadFilter(mode string, size int) string {
	switch mode {
	case config.PaddingTopBottom:
		return fmt.Sprintf("pad=iw:ih+%d:0:%d:black", 2*size, size)
	case config.PaddingBottomDouble:
		return fmt.Sprintf("pad=iw:ih+%d:0:0:black", 2*size)
	default:
		return ""
	}
}

func SubtitleFilter(path string, style Style) string {
	return fmt.Sprintf("subtitles=filename='%s':force_style='%s'", EscapeFilterPath(path), style)
}

// vertical placement of both tracks in script units
type Placement struct {
	Korean  Style
	English Style
}

// Layout places English above Korean, inside the padding bands when there
// are any. height is the picture height before padding.
func Layout(mode string, size, height int, fonts config.FontConfig) Placement {
	korean := Style{FontName: fonts.Korean, FontSize: fonts.Size, Alignment: alignBottomCenter}
	english := Style{FontName: fonts.English, FontSize: fonts.Size}

	total := height
	if mode == config.PaddingTopBottom || mode == config.PaddingBottomDouble {
		total += 2 * size
	}

	// keep text off the band edge
	inset := size / 4

	switch mode {
	case config.PaddingTopBottom:
		english.Alignment = alignTopCenter
		english.MarginV = toScriptUnits(inset, total)
		korean.MarginV = toScriptUnits(inset, total)
	case config.PaddingBottomDouble:
		english.Alignment = alignBottomCenter
		english.MarginV = toScriptUnits(size+inset, total)
		korean.MarginV = toScriptUnits(inset, total)
	default:
		english.Alignment = alignTopCenter
		english.MarginV = toScriptUnits(height/20, total)
		korean.MarginV = toScriptUnits(height/20, total)
	}

	return Placement{Korean: korean, English: english}
}

func toScriptUnits(px, total int) int {
	if total <= 0 {
		return 0
	}
	return px * scriptHeight / total
}

// OutputPath names the burned video after its padding layout
func OutputPath(input, mode string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)

	switch mode {
	case config.PaddingTopBottom:
		return base + "_with_padding" + ext
	case config.PaddingBottomDouble:
		return base + "_with_bottompadding" + ext
	default:
		return base + "_subtitled" + ext
	}
}
