package syntax

import (
	"sort"
	"strings"

	"github.com/blacktop/asmview/internal/log"
)

// lineWindow is a line's [start, end) byte range in the source buffer,
// excluding its terminator.
type lineWindow struct {
	start int
	end   int
}

// splitLines records each line's window at "\n" boundaries. A trailing "\r"
// is treated as part of the terminator. Empty input yields no lines.
func splitLines(src string) []lineWindow {
	if src == "" {
		return nil
	}
	windows := make([]lineWindow, 0, strings.Count(src, "\n")+1)
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] != '\n' {
			continue
		}
		end := i
		if end > start && src[end-1] == '\r' {
			end--
		}
		windows = append(windows, lineWindow{start: start, end: end})
		start = i + 1
	}
	if start < len(src) {
		windows = append(windows, lineWindow{start: start, end: len(src)})
	}
	return windows
}

// BuildDocument converts source text plus a position-ordered capture list
// into a Document. Captures spanning multiple lines are clipped per line;
// where captures overlap, the innermost (shortest) span wins, and spans with
// identical extent go to the earlier-emitted capture. Malformed ranges are
// clipped or dropped, never fatal. Each line's segments partition the line
// exactly.
func BuildDocument(src string, captures []Capture) *Document {
	windows := splitLines(src)
	lines := make([]Line, len(windows))
	for i, w := range windows {
		lines[i] = buildLine(src, w, captures)
	}
	return &Document{lines: lines, generation: generation.Add(1)}
}

// PlainDocument builds an unhighlighted document: one default segment per
// non-empty line. Used as the fallback when no grammar is available.
func PlainDocument(src string) *Document {
	return BuildDocument(src, nil)
}

// lineSpan is a capture clipped to one line, offsets relative to the line.
type lineSpan struct {
	start int
	end   int
	order int
	name  string
}

func buildLine(src string, w lineWindow, captures []Capture) Line {
	text := src[w.start:w.end]
	if len(text) == 0 {
		return nil
	}

	var spans []lineSpan
	for order, c := range captures {
		if c.Name == "" {
			continue
		}
		if c.End < c.Start {
			log.Debug(log.CatSyntax, "dropping malformed capture", "name", c.Name, "start", c.Start, "end", c.End)
			continue
		}
		if c.Start >= w.end {
			// Captures are ordered by start; nothing past here intersects.
			break
		}
		start := max(c.Start, w.start)
		end := min(c.End, w.end)
		if start >= end {
			// Zero-length after clipping, or entirely before this line.
			continue
		}
		spans = append(spans, lineSpan{start: start - w.start, end: end - w.start, order: order, name: c.Name})
	}
	if len(spans) == 0 {
		return Line{{Text: text}}
	}

	// Paint longer spans first so shorter (innermost) spans overwrite them.
	// Identical extents paint the earlier-emitted capture last, so it wins.
	sort.SliceStable(spans, func(i, j int) bool {
		li, lj := spans[i].end-spans[i].start, spans[j].end-spans[j].start
		if li != lj {
			return li > lj
		}
		return spans[i].order > spans[j].order
	})

	owner := make([]int, len(text))
	for i := range owner {
		owner[i] = -1
	}
	for si, sp := range spans {
		for i := sp.start; i < sp.end; i++ {
			owner[i] = si
		}
	}

	nameAt := func(i int) string {
		if owner[i] < 0 {
			return ""
		}
		return spans[owner[i]].name
	}

	var segs Line
	runStart := 0
	for i := 1; i <= len(text); i++ {
		if i < len(text) && nameAt(i) == nameAt(runStart) {
			continue
		}
		segs = append(segs, Segment{Text: text[runStart:i], Capture: nameAt(runStart)})
		runStart = i
	}

	// Partition check: a line that fails it degrades to plain text on its
	// own, leaving the rest of the document highlighted.
	total := 0
	for _, s := range segs {
		total += len(s.Text)
	}
	if total != len(text) {
		log.Warn(log.CatSyntax, "segment partition mismatch, degrading line", "want", len(text), "got", total)
		return Line{{Text: text}}
	}
	return segs
}
