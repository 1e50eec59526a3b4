package viewer

import (
	"strings"
)

// VirtualViewport renders only visible lines without padding overhead.
// Building one O(n) string per frame for an n-line document is the main
// cost in a naive viewport; this renders O(visible) lines directly and
// relies on the render cache for repeat frames.
type VirtualViewport struct {
	// content holds the document lines and per-line rendering logic
	content *Content

	// scrollOffset is the current scroll position (first visible line index)
	scrollOffset int

	// height is the number of visible lines in the viewport
	height int

	// width is the viewport width for line rendering
	width int

	// bufferLines is the number of lines to pre-render above/below the
	// visible area for smoother scrolling and cache warming
	bufferLines int
}

// DefaultBufferLines is the cache pre-warm distance above and below the
// visible area.
const DefaultBufferLines = 50

// NewVirtualViewport creates a viewport over the given content.
func NewVirtualViewport(content *Content) *VirtualViewport {
	return &VirtualViewport{
		content:     content,
		bufferLines: DefaultBufferLines,
	}
}

// SetSize updates the viewport dimensions.
func (vv *VirtualViewport) SetSize(width, height int) {
	vv.width = width
	vv.height = height
	vv.content.SetWidth(width)

	// Scroll position must stay valid after a resize
	vv.clampScrollOffset()
}

// Height returns the current viewport height.
func (vv *VirtualViewport) Height() int {
	return vv.height
}

// Width returns the current viewport width.
func (vv *VirtualViewport) Width() int {
	return vv.width
}

// TotalLines returns the total number of lines in the content.
func (vv *VirtualViewport) TotalLines() int {
	return vv.content.TotalLines()
}

// YOffset returns the current scroll position (first visible line index).
func (vv *VirtualViewport) YOffset() int {
	return vv.scrollOffset
}

// SetYOffset sets the scroll position, clamped to [0, totalLines - height].
func (vv *VirtualViewport) SetYOffset(offset int) {
	vv.scrollOffset = offset
	vv.clampScrollOffset()
}

// ScrollUp scrolls up by n lines.
func (vv *VirtualViewport) ScrollUp(n int) {
	vv.scrollOffset -= n
	vv.clampScrollOffset()
}

// ScrollDown scrolls down by n lines.
func (vv *VirtualViewport) ScrollDown(n int) {
	vv.scrollOffset += n
	vv.clampScrollOffset()
}

// GotoTop scrolls to the top of the content.
func (vv *VirtualViewport) GotoTop() {
	vv.scrollOffset = 0
}

// GotoBottom scrolls to the bottom of the content.
func (vv *VirtualViewport) GotoBottom() {
	vv.scrollOffset = vv.maxScrollOffset()
}

// HalfPageUp scrolls up by half a page.
func (vv *VirtualViewport) HalfPageUp() {
	vv.ScrollUp(vv.height / 2)
}

// HalfPageDown scrolls down by half a page.
func (vv *VirtualViewport) HalfPageDown() {
	vv.ScrollDown(vv.height / 2)
}

// PageUp scrolls up by one page.
func (vv *VirtualViewport) PageUp() {
	vv.ScrollUp(vv.height)
}

// PageDown scrolls down by one page.
func (vv *VirtualViewport) PageDown() {
	vv.ScrollDown(vv.height)
}

// AtTop returns true if scrolled to the top.
func (vv *VirtualViewport) AtTop() bool {
	return vv.scrollOffset == 0
}

// AtBottom returns true if scrolled to the bottom.
func (vv *VirtualViewport) AtBottom() bool {
	return vv.scrollOffset >= vv.maxScrollOffset()
}

// ScrollPercent returns the scroll position as a fraction (0.0 to 1.0).
// Returns 0.0 if the content fits within the viewport.
func (vv *VirtualViewport) ScrollPercent() float64 {
	maxOffset := vv.maxScrollOffset()
	if maxOffset <= 0 {
		return 0.0
	}
	return float64(vv.scrollOffset) / float64(maxOffset)
}

// VisibleLineCount returns the number of lines currently visible.
// This may be less than height near the end of the content.
func (vv *VirtualViewport) VisibleLineCount() int {
	total := vv.content.TotalLines()
	if total == 0 {
		return 0
	}
	endIdx := min(vv.scrollOffset+vv.height, total)
	return endIdx - vv.scrollOffset
}

// LineRange returns the start and end indices of currently visible lines.
// End is exclusive.
func (vv *VirtualViewport) LineRange() (start, end int) {
	start = vv.scrollOffset
	end = min(start+vv.height, vv.content.TotalLines())
	return start, end
}

// Render returns only the visible lines as a single string.
// Lines in the buffer zone above and below the visible area are rendered
// too, purely to warm the cache for the next scroll step.
func (vv *VirtualViewport) Render() string {
	total := vv.content.TotalLines()
	if total == 0 || vv.height <= 0 || vv.width <= 0 {
		return ""
	}

	startIdx := vv.scrollOffset
	endIdx := min(startIdx+vv.height, total)

	vv.prewarmCache(startIdx, endIdx)

	var sb strings.Builder
	sb.Grow(vv.height * 100)

	for i := startIdx; i < endIdx; i++ {
		if i > startIdx {
			sb.WriteByte('\n')
		}
		sb.WriteString(vv.content.renderLine(i))
	}

	return sb.String()
}

// prewarmCache renders lines in the buffer zone to warm the cache.
func (vv *VirtualViewport) prewarmCache(visibleStart, visibleEnd int) {
	bufferStart := max(0, visibleStart-vv.bufferLines)
	for i := bufferStart; i < visibleStart; i++ {
		_ = vv.content.renderLine(i)
	}

	bufferEnd := min(vv.content.TotalLines(), visibleEnd+vv.bufferLines)
	for i := visibleEnd; i < bufferEnd; i++ {
		_ = vv.content.renderLine(i)
	}
}

// Content returns the underlying Content for direct access.
// Use sparingly, prefer the VirtualViewport methods.
func (vv *VirtualViewport) Content() *Content {
	return vv.content
}

// clampScrollOffset ensures scrollOffset is within valid bounds.
func (vv *VirtualViewport) clampScrollOffset() {
	maxOffset := vv.maxScrollOffset()
	if vv.scrollOffset < 0 {
		vv.scrollOffset = 0
	} else if vv.scrollOffset > maxOffset {
		vv.scrollOffset = maxOffset
	}
}

// maxScrollOffset returns the maximum valid scroll offset:
// totalLines - height, never negative.
func (vv *VirtualViewport) maxScrollOffset() int {
	total := vv.content.TotalLines()
	if total <= vv.height {
		return 0
	}
	return total - vv.height
}
