package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplitLines_Empty(t *testing.T) {
	require.Empty(t, splitLines(""))
}

func TestSplitLines_TrailingNewline(t *testing.T) {
	windows := splitLines("a\nb\n")
	require.Len(t, windows, 2)
	require.Equal(t, lineWindow{start: 0, end: 1}, windows[0])
	require.Equal(t, lineWindow{start: 2, end: 3}, windows[1])
}

func TestSplitLines_NoTrailingNewline(t *testing.T) {
	windows := splitLines("a\nb")
	require.Len(t, windows, 2)
	require.Equal(t, lineWindow{start: 2, end: 3}, windows[1])
}

func TestSplitLines_CRLF(t *testing.T) {
	windows := splitLines("ab\r\ncd\r\n")
	require.Len(t, windows, 2)
	require.Equal(t, lineWindow{start: 0, end: 2}, windows[0])
	require.Equal(t, lineWindow{start: 4, end: 6}, windows[1])
}

func TestBuildDocument_EmptyInput(t *testing.T) {
	doc := BuildDocument("", nil)
	require.Equal(t, 0, doc.Len())
	require.Nil(t, doc.Line(0))
}

func TestBuildDocument_EmptyLineHasNoSegments(t *testing.T) {
	doc := BuildDocument("a\n\nb\n", nil)
	require.Equal(t, 3, doc.Len())
	require.Empty(t, doc.Line(1))
	require.Equal(t, "", doc.Line(1).Text())
}

func TestBuildDocument_OverlapInnermostWins(t *testing.T) {
	// keyword [0,10) with register [2,5) nested inside: the inner capture
	// claims its region, the outer keeps the rest.
	src := "abcdefghij"
	doc := BuildDocument(src, []Capture{
		{Start: 0, End: 10, Name: "keyword"},
		{Start: 2, End: 5, Name: "register"},
	})

	require.Equal(t, Line{
		{Text: "ab", Capture: "keyword"},
		{Text: "cde", Capture: "register"},
		{Text: "fghij", Capture: "keyword"},
	}, doc.Line(0))
}

func TestBuildDocument_IdenticalExtentEarlierWins(t *testing.T) {
	src := "word"
	doc := BuildDocument(src, []Capture{
		{Start: 0, End: 4, Name: "keyword"},
		{Start: 0, End: 4, Name: "register"},
	})
	require.Equal(t, Line{{Text: "word", Capture: "keyword"}}, doc.Line(0))
}

func TestBuildDocument_MultiLineCaptureClipped(t *testing.T) {
	src := "aa\nbb\ncc"
	doc := BuildDocument(src, []Capture{{Start: 1, End: 7, Name: "comment"}})

	require.Equal(t, Line{
		{Text: "a"},
		{Text: "a", Capture: "comment"},
	}, doc.Line(0))
	require.Equal(t, Line{{Text: "bb", Capture: "comment"}}, doc.Line(1))
	require.Equal(t, Line{
		{Text: "c", Capture: "comment"},
		{Text: "c"},
	}, doc.Line(2))
}

func TestBuildDocument_ZeroLengthCaptureDropped(t *testing.T) {
	doc := BuildDocument("abc", []Capture{{Start: 1, End: 1, Name: "number"}})
	require.Equal(t, Line{{Text: "abc"}}, doc.Line(0))
}

func TestBuildDocument_MalformedCapturesDefensive(t *testing.T) {
	src := "hello"
	doc := BuildDocument(src, []Capture{
		{Start: -2, End: 2, Name: "label"},    // clamped to [0,2)
		{Start: 3, End: 1, Name: "keyword"},   // negative length: dropped
		{Start: 4, End: 99, Name: "register"}, // clipped to [4,5)
		{Start: 50, End: 60, Name: "comment"}, // entirely outside: ignored
	})

	require.Equal(t, Line{
		{Text: "he", Capture: "label"},
		{Text: "ll"},
		{Text: "o", Capture: "register"},
	}, doc.Line(0))
}

func TestBuildDocument_AdjacentSameCaptureMerges(t *testing.T) {
	src := "aabb"
	doc := BuildDocument(src, []Capture{
		{Start: 0, End: 2, Name: "keyword"},
		{Start: 2, End: 4, Name: "keyword"},
	})
	require.Equal(t, Line{{Text: "aabb", Capture: "keyword"}}, doc.Line(0))
}

func TestBuildDocument_Scenario(t *testing.T) {
	// "_main:\n  ret\n" with a label over "_main" and a keyword over "ret".
	src := "_main:\n  ret\n"
	doc := BuildDocument(src, []Capture{
		{Start: 0, End: 5, Name: "label"},
		{Start: 9, End: 12, Name: "keyword"},
	})

	require.Equal(t, 2, doc.Len())
	require.Equal(t, Line{
		{Text: "_main", Capture: "label"},
		{Text: ":"},
	}, doc.Line(0))
	require.Equal(t, Line{
		{Text: "  "},
		{Text: "ret", Capture: "keyword"},
	}, doc.Line(1))
}

func TestBuildDocument_Idempotent(t *testing.T) {
	src := "_main:\n  stp x29, x30, [sp, #-16]!\n  ret\n"
	captures := []Capture{
		{Start: 0, End: 5, Name: "label"},
		{Start: 9, End: 12, Name: "keyword"},
	}

	a := BuildDocument(src, captures)
	b := BuildDocument(src, captures)

	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, a.Slice(0, a.Len()), b.Slice(0, b.Len()))
}

func TestDocument_SliceClamped(t *testing.T) {
	doc := BuildDocument("a\nb\nc", nil)
	require.Len(t, doc.Slice(-5, 99), 3)
	require.Len(t, doc.Slice(1, 2), 1)
	require.Nil(t, doc.Slice(2, 2))
	require.Nil(t, doc.Slice(5, 9))
}

func TestStore_PublishAndSnapshot(t *testing.T) {
	var store Store
	require.Nil(t, store.Snapshot())

	first := BuildDocument("one", nil)
	store.Publish(first)
	require.Same(t, first, store.Snapshot())

	second := BuildDocument("two", nil)
	store.Publish(second)
	require.Same(t, second, store.Snapshot())
	require.NotEqual(t, first.Generation(), second.Generation())
}

// TestBuildDocument_RoundTrip is the core invariant: for any source text and
// any capture list, per-line segment concatenation reproduces the source
// exactly, with no gaps and no overlaps.
func TestBuildDocument_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.StringOfN(rapid.RuneFrom([]rune("ab :_#x0\t\n")), 0, 200, -1).Draw(rt, "src")

		n := rapid.IntRange(0, 8).Draw(rt, "captures")
		captures := make([]Capture, 0, n)
		names := []string{"keyword", "comment", "register", "number", "label"}
		for i := 0; i < n; i++ {
			start := rapid.IntRange(-2, len(src)+2).Draw(rt, "start")
			end := rapid.IntRange(-2, len(src)+2).Draw(rt, "end")
			captures = append(captures, Capture{
				Start: start,
				End:   end,
				Name:  rapid.SampledFrom(names).Draw(rt, "name"),
			})
		}
		sortCaptures(captures)

		doc := BuildDocument(src, captures)

		var lines []string
		for i := 0; i < doc.Len(); i++ {
			line := doc.Line(i)
			for _, seg := range line {
				require.NotEmpty(rt, seg.Text, "segments never carry empty text")
			}
			lines = append(lines, line.Text())
		}

		rebuilt := strings.Join(lines, "\n")
		if strings.HasSuffix(src, "\n") {
			rebuilt += "\n"
		}
		require.Equal(rt, src, rebuilt)
	})
}
