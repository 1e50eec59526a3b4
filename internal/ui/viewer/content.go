// Package viewer provides the TUI component that displays a highlighted
// document. Only visible lines are rendered per frame; rendered lines are
// cached keyed on the document generation so a republished document never
// serves stale rows.
package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/blacktop/asmview/internal/syntax"
	"github.com/blacktop/asmview/internal/ui/styles"
)

// Package-level styles for the hot render path.
var (
	gutterStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
)

// ContentConfig holds display options for rendered lines.
type ContentConfig struct {
	ShowLineNumbers bool
	TabWidth        int
}

// DefaultContentConfig returns sensible display defaults.
func DefaultContentConfig() ContentConfig {
	return ContentConfig{
		ShowLineNumbers: true,
		TabWidth:        4,
	}
}

// Content renders lines of a highlighted document on demand.
// It holds the current document snapshot, the render cache, and the display
// options that affect how a line is drawn. Width changes and document swaps
// do not clear the cache: both participate in the cache key, so old entries
// simply stop being referenced and age out of the LRU.
type Content struct {
	doc   *syntax.Document
	cache *RenderCache
	cfg   ContentConfig
	width int

	// gutterWidth is the digit column width for line numbers, derived from
	// the document's line count. Zero when line numbers are off.
	gutterWidth int
}

// NewContent creates a Content for the given document.
// The cache may be shared across document swaps.
func NewContent(doc *syntax.Document, cache *RenderCache, cfg ContentConfig) *Content {
	if cache == nil {
		cache = NewRenderCache(DefaultCacheCapacity)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	c := &Content{
		doc:   doc,
		cache: cache,
		cfg:   cfg,
	}
	c.gutterWidth = c.computeGutterWidth()
	return c
}

// SetDocument swaps in a new document snapshot. Cached lines from the old
// document stay keyed under the old generation and are never served again.
func (c *Content) SetDocument(doc *syntax.Document) {
	c.doc = doc
	c.gutterWidth = c.computeGutterWidth()
}

// Document returns the current document snapshot.
func (c *Content) Document() *syntax.Document {
	return c.doc
}

// SetWidth updates the render width.
func (c *Content) SetWidth(width int) {
	c.width = width
}

// SetLineNumbers toggles the line number gutter.
func (c *Content) SetLineNumbers(on bool) {
	c.cfg.ShowLineNumbers = on
	c.gutterWidth = c.computeGutterWidth()
}

// LineNumbers reports whether the line number gutter is shown.
func (c *Content) LineNumbers() bool {
	return c.cfg.ShowLineNumbers
}

// TotalLines returns the line count of the current document.
func (c *Content) TotalLines() int {
	return c.doc.Len()
}

// computeGutterWidth returns the digit column width needed for the largest
// line number, minimum 3 so the gutter doesn't jitter on small files.
func (c *Content) computeGutterWidth() int {
	if !c.cfg.ShowLineNumbers {
		return 0
	}
	w := len(itoa(c.doc.Len()))
	if w < 3 {
		w = 3
	}
	return w
}

// renderLine renders a single line, using the cache when available.
func (c *Content) renderLine(index int) string {
	key := RenderKey{
		Generation: c.doc.Generation(),
		Line:       index,
		Width:      c.width,
		Theme:      styles.ThemeName(),
	}
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	rendered := c.doRenderLine(index)
	c.cache.Put(key, rendered)
	return rendered
}

// doRenderLine performs the actual rendering of a single line:
// gutter, tab expansion, per-segment styling, width truncation.
func (c *Content) doRenderLine(index int) string {
	line := c.doc.Line(index)

	var sb strings.Builder
	if c.cfg.ShowLineNumbers {
		sb.WriteString(gutterStyle.Render(formatGutter(index+1, c.gutterWidth)))
	}

	// Tab stops are tracked across segments so a tab in a later segment
	// still lands on the correct column.
	col := 0
	for _, seg := range line {
		text, endCol := expandTabs(seg.Text, c.cfg.TabWidth, col)
		col = endCol
		sb.WriteString(styles.CaptureStyle(seg.Capture).Render(text))
	}

	rendered := sb.String()
	if c.width > 0 && lipgloss.Width(rendered) > c.width {
		rendered = ansi.Truncate(rendered, c.width, "…")
	}
	return rendered
}

// formatGutter formats a right-aligned line number followed by a separator.
func formatGutter(lineNum, width int) string {
	s := itoa(lineNum)
	if len(s) < width {
		s = strings.Repeat(" ", width-len(s)) + s
	}
	return s + " │ "
}

// GutterDisplayWidth returns the display columns the gutter occupies,
// or 0 when line numbers are off.
func (c *Content) GutterDisplayWidth() int {
	if !c.cfg.ShowLineNumbers {
		return 0
	}
	return c.gutterWidth + runewidth.StringWidth(" │ ")
}

// expandTabs replaces tabs with spaces up to the next tab stop, starting at
// display column startCol. Returns the expanded text and the ending column.
// Iterates grapheme clusters so wide characters advance columns correctly.
func expandTabs(s string, tabWidth int, startCol int) (string, int) {
	col := startCol
	if !strings.ContainsRune(s, '\t') {
		return s, col + runewidth.StringWidth(s)
	}

	var sb strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteString(cluster)
		col += runewidth.StringWidth(cluster)
	}
	return sb.String(), col
}

// itoa converts an int to string without fmt in the hot path.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
