package syntax

import "sync/atomic"

// Segment is the smallest renderable unit: a contiguous run of text within
// one line that resolved to a single capture. An empty Capture means default
// text. Concatenating a line's segment texts in order reproduces the line
// byte for byte.
type Segment struct {
	Text    string
	Capture string
}

// Line is the ordered segment list for one display line. Empty lines have no
// segments but are still valid lines (rendered as a blank row).
type Line []Segment

// Text returns the line's original text.
func (l Line) Text() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	var n int
	for _, s := range l {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Document is one complete highlighting pass over a source text: an ordered
// sequence of lines, each an ordered sequence of segments. Documents are
// immutable once built; a new pass produces a fresh Document that replaces
// the old one wholesale.
type Document struct {
	lines      []Line
	generation uint64
}

var generation atomic.Uint64

// Len returns the total line count.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// Line returns the segments of line i, or nil when i is out of range.
func (d *Document) Line(i int) Line {
	if d == nil || i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i]
}

// Slice returns the lines in [start, end), clamped to the document bounds.
// This is the virtualized render boundary: only the requested range is ever
// materialized by callers, and overlapping queries are safe to repeat.
func (d *Document) Slice(start, end int) []Line {
	if d == nil {
		return nil
	}
	start = max(start, 0)
	end = min(end, len(d.lines))
	if start >= end {
		return nil
	}
	return d.lines[start:end]
}

// Generation identifies this pass. Render caches key on it so stale entries
// die with the document they were built from.
func (d *Document) Generation() uint64 {
	if d == nil {
		return 0
	}
	return d.generation
}

// Store publishes documents to readers with copy-on-replace semantics: a new
// pass is built fully off to the side, then swapped in one atomic step.
// Readers always observe a complete document, never a mixed state.
type Store struct {
	ptr atomic.Pointer[Document]
}

// Publish atomically replaces the current document.
func (s *Store) Publish(d *Document) {
	s.ptr.Store(d)
}

// Snapshot returns the most recently published document, or nil when no pass
// has completed yet.
func (s *Store) Snapshot() *Document {
	return s.ptr.Load()
}
