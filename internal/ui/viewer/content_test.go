package viewer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/blacktop/asmview/internal/syntax"
)

func highlightedDoc(t *testing.T, src string) *syntax.Document {
	t.Helper()
	reg := syntax.NewRegistry()
	syntax.RegisterAssembly(reg)
	doc, err := reg.Highlight(syntax.AsmGrammarID, src)
	require.NoError(t, err)
	return doc
}

func TestExpandTabs_NoTabs(t *testing.T) {
	text, col := expandTabs("ret", 4, 0)
	require.Equal(t, "ret", text)
	require.Equal(t, 3, col)
}

func TestExpandTabs_LeadingTab(t *testing.T) {
	text, col := expandTabs("\tret", 4, 0)
	require.Equal(t, "    ret", text)
	require.Equal(t, 7, col)
}

func TestExpandTabs_TabStopMidLine(t *testing.T) {
	// Tab after one column advances to the next stop, not a fixed width
	text, col := expandTabs("a\tb", 4, 0)
	require.Equal(t, "a   b", text)
	require.Equal(t, 5, col)
}

func TestExpandTabs_StartColumnCarriesAcrossSegments(t *testing.T) {
	// A tab in a later segment must respect columns consumed earlier
	text, col := expandTabs("\tx", 4, 2)
	require.Equal(t, "  x", text)
	require.Equal(t, 5, col)
}

func TestExpandTabs_WideCharacters(t *testing.T) {
	// CJK characters occupy two columns, so the tab fills only two
	text, col := expandTabs("世\tx", 4, 0)
	require.Equal(t, "世  x", text)
	require.Equal(t, 5, col)
}

func TestContent_RenderLinePlainTextRoundTrip(t *testing.T) {
	doc := highlightedDoc(t, "  mov w0, #0x1\n  ret\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{TabWidth: 4})
	c.SetWidth(80)

	// Without the gutter, stripped output reproduces the source line
	require.Equal(t, "  mov w0, #0x1", ansi.Strip(c.renderLine(0)))
	require.Equal(t, "  ret", ansi.Strip(c.renderLine(1)))
}

func TestContent_RenderLineGutter(t *testing.T) {
	doc := highlightedDoc(t, "one\ntwo\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{ShowLineNumbers: true, TabWidth: 4})
	c.SetWidth(80)

	require.Equal(t, "  1 │ one", ansi.Strip(c.renderLine(0)))
	require.Equal(t, "  2 │ two", ansi.Strip(c.renderLine(1)))
}

func TestContent_GutterWidensForLargeFiles(t *testing.T) {
	src := strings.Repeat("nop\n", 1200)
	doc := highlightedDoc(t, src)
	c := NewContent(doc, NewRenderCache(10), ContentConfig{ShowLineNumbers: true, TabWidth: 4})
	c.SetWidth(80)

	require.Equal(t, "   1 │ nop", ansi.Strip(c.renderLine(0)))
	require.Equal(t, "1200 │ nop", ansi.Strip(c.renderLine(1199)))
}

func TestContent_RenderLineTruncatesToWidth(t *testing.T) {
	doc := highlightedDoc(t, strings.Repeat("x", 200)+"\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{TabWidth: 4})
	c.SetWidth(20)

	rendered := c.renderLine(0)
	require.LessOrEqual(t, ansi.StringWidth(rendered), 20)
	require.True(t, strings.HasSuffix(ansi.Strip(rendered), "…"))
}

func TestContent_RenderLineUsesCache(t *testing.T) {
	doc := highlightedDoc(t, "ret\n")
	cache := NewRenderCache(10)
	c := NewContent(doc, cache, ContentConfig{TabWidth: 4})
	c.SetWidth(80)

	first := c.renderLine(0)
	second := c.renderLine(0)

	require.Equal(t, first, second)
	metrics := cache.GetMetrics()
	require.Equal(t, uint64(1), metrics.Hits)
	require.Equal(t, uint64(1), metrics.Misses)
}

func TestContent_SetDocumentInvalidatesByGeneration(t *testing.T) {
	cache := NewRenderCache(10)
	c := NewContent(highlightedDoc(t, "ret\n"), cache, ContentConfig{TabWidth: 4})
	c.SetWidth(80)
	_ = c.renderLine(0)

	// A fresh pass carries a new generation, so the old entry cannot hit
	c.SetDocument(highlightedDoc(t, "nop\n"))
	require.Equal(t, "nop", ansi.Strip(c.renderLine(0)))
}

func TestContent_ToggleLineNumbers(t *testing.T) {
	doc := highlightedDoc(t, "ret\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{ShowLineNumbers: true, TabWidth: 4})
	c.SetWidth(80)

	require.Equal(t, "  1 │ ret", ansi.Strip(c.doRenderLine(0)))

	c.SetLineNumbers(false)
	require.Equal(t, "ret", ansi.Strip(c.doRenderLine(0)))
}

func TestContent_TabExpansionInRenderedLine(t *testing.T) {
	doc := highlightedDoc(t, "\tstp x29, x30, [sp, #-16]!\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{TabWidth: 8})
	c.SetWidth(120)

	rendered := ansi.Strip(c.renderLine(0))
	require.Equal(t, "        stp x29, x30, [sp, #-16]!", rendered)
	require.NotContains(t, rendered, "\t")
}

func TestContent_EmptyLine(t *testing.T) {
	doc := highlightedDoc(t, "a\n\nb\n")
	c := NewContent(doc, NewRenderCache(10), ContentConfig{TabWidth: 4})
	c.SetWidth(80)

	require.Equal(t, "", ansi.Strip(c.renderLine(1)))
}
