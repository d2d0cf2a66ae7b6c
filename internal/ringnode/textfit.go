package ringnode

import "strings"

// measureFunc returns the rendered width of a string at a font size.
// Injected so layout is testable without a font or a window.
type measureFunc func(s string, size float32) float32

// minFontSize is the floor for shrink-to-fit; below this the text is drawn
// anyway, overflowing if it must.
const minFontSize = 4

// fitLines word-wraps text to the given width and line limit, shrinking the
// font size one unit at a time until everything fits. Returns the wrapped
// lines and the size they fit at. At minFontSize the best-effort wrap is
// returned even if it still overflows the width; the line limit is a hard
// cap, so lines past it are dropped.
func fitLines(text string, width, size float32, maxLines int, measure measureFunc) ([]string, float32) {
	for ; size > minFontSize; size-- {
		if lines, ok := wrapWords(text, width, size, maxLines, measure); ok {
			return lines, size
		}
	}
	lines, _ := wrapWords(text, width, minFontSize, maxLines, measure)
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines, minFontSize
}

// wrapWords greedily packs words into lines no wider than width at the given
// size. ok is false when the wrap does not fit: a single word overflows
// width, or more than maxLines lines are needed (maxLines 0 = unlimited).
func wrapWords(text string, width, size float32, maxLines int, measure measureFunc) (lines []string, ok bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, true
	}
	cur := words[0]
	for _, w := range words[1:] {
		if measure(cur+" "+w, size) <= width {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	lines = append(lines, cur)
	if maxLines > 0 && len(lines) > maxLines {
		return lines, false
	}
	for _, line := range lines {
		if measure(line, size) > width {
			return lines, false
		}
	}
	return lines, true
}
