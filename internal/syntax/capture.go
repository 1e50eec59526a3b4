// Package syntax implements the highlighting pipeline: raw source text plus
// a registered grammar produce a stream of classified text segments, laid out
// per line for virtualized rendering.
//
// Data flow: source text -> Engine captures -> BuildDocument segments ->
// per-line segment lists consumed by the viewer.
package syntax

import (
	"sort"
	"unicode/utf8"
)

// Capture is a labeled span of source text identified by a grammar pattern.
// Offsets are byte offsets into the source; Start <= End <= len(source).
type Capture struct {
	Start int
	End   int
	Name  string
}

// Len returns the capture's span length in bytes.
func (c Capture) Len() int { return c.End - c.Start }

// Engine is the parser/query runtime consumed as a black box: given source
// text it returns every capture its highlight query matches. asmview ships a
// pattern-based engine (see CompileQuery); tests substitute their own.
//
// Implementations emit captures in query declaration order per pattern;
// Captures callers must not assume any global ordering.
type Engine interface {
	Captures(src string) []Capture
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(src string) []Capture

// Captures implements Engine.
func (f EngineFunc) Captures(src string) []Capture { return f(src) }

// isValidSource reports whether source text is decodable as UTF-8.
func isValidSource(src string) bool { return utf8.ValidString(src) }

// Classify runs an engine over source text and returns its captures ordered
// by ascending start offset. Ties keep the engine's emission order, so an
// earlier-declared pattern wins when two spans share a start.
//
// The source is validated as UTF-8 up front; ErrInvalidEncoding means no
// captures were produced at all.
func Classify(e Engine, src string) ([]Capture, error) {
	if e == nil {
		return nil, ErrGrammarUnavailable
	}
	if !isValidSource(src) {
		return nil, ErrInvalidEncoding
	}

	captures := e.Captures(src)
	sortCaptures(captures)
	return captures, nil
}

// sortCaptures orders captures by ascending start offset, keeping the input
// order for equal starts.
func sortCaptures(captures []Capture) {
	sort.SliceStable(captures, func(i, j int) bool {
		return captures[i].Start < captures[j].Start
	})
}
