package viewer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultScrollbarConfig(t *testing.T) {
	cfg := DefaultScrollbarConfig()

	require.Equal(t, "░", cfg.TrackChar)
	require.Equal(t, "█", cfg.ThumbChar)
}

func TestCalculateThumbBounds_SmallFile(t *testing.T) {
	// 50 lines, 30 viewport: thumb should be large
	cfg := ScrollbarConfig{TotalLines: 50, ViewportHeight: 30, ScrollOffset: 0}

	start, height := calculateThumbBounds(cfg)

	// thumbHeight = max(1, 30*30/50) = 18
	require.Equal(t, 18, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_LargeFile(t *testing.T) {
	// 1000 lines, 30 viewport: thumb should be the minimum 1
	cfg := ScrollbarConfig{TotalLines: 1000, ViewportHeight: 30, ScrollOffset: 0}

	start, height := calculateThumbBounds(cfg)

	require.Equal(t, 1, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_ContentFitsViewport(t *testing.T) {
	cfg := ScrollbarConfig{TotalLines: 30, ViewportHeight: 30, ScrollOffset: 0}

	start, height := calculateThumbBounds(cfg)
	require.Equal(t, 30, height, "thumb fills viewport when content fits")
	require.Equal(t, 0, start)

	cfg.TotalLines = 20
	start, height = calculateThumbBounds(cfg)
	require.Equal(t, 30, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_ZeroDimensions(t *testing.T) {
	start, height := calculateThumbBounds(ScrollbarConfig{TotalLines: 0, ViewportHeight: 30})
	require.Equal(t, 0, height)
	require.Equal(t, 0, start)

	start, height = calculateThumbBounds(ScrollbarConfig{TotalLines: 100, ViewportHeight: 0})
	require.Equal(t, 0, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_ScrollAtEnd(t *testing.T) {
	cfg := ScrollbarConfig{TotalLines: 100, ViewportHeight: 30, ScrollOffset: 70}

	start, height := calculateThumbBounds(cfg)

	// Thumb should be at the bottom of the track
	require.Equal(t, 30-height, start)
	require.Greater(t, height, 0)
}

func TestRenderScrollbar_ContentFits(t *testing.T) {
	cfg := DefaultScrollbarConfig()
	cfg.TotalLines = 10
	cfg.ViewportHeight = 20

	out := RenderScrollbar(cfg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Equal(t, " ", line, "no scrollbar drawn when content fits")
	}
}

func TestRenderScrollbar_TrackAndThumb(t *testing.T) {
	cfg := DefaultScrollbarConfig()
	cfg.TotalLines = 100
	cfg.ViewportHeight = 10
	cfg.ScrollOffset = 0

	out := ansi.Strip(RenderScrollbar(cfg))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)

	// thumbHeight = max(1, 10*10/100) = 1, at row 0
	require.Equal(t, "█", lines[0])
	for _, line := range lines[1:] {
		require.Equal(t, "░", line)
	}
}

func TestRenderScrollbar_Empty(t *testing.T) {
	require.Equal(t, "", RenderScrollbar(ScrollbarConfig{}))
}

func TestCalculateThumbBounds_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := ScrollbarConfig{
			TotalLines:     rapid.IntRange(1, 100000).Draw(t, "total"),
			ViewportHeight: rapid.IntRange(1, 500).Draw(t, "height"),
		}
		maxOffset := max(cfg.TotalLines-cfg.ViewportHeight, 0)
		cfg.ScrollOffset = rapid.IntRange(0, maxOffset).Draw(t, "offset")

		start, height := calculateThumbBounds(cfg)

		// Thumb always exists and stays within the track
		require.GreaterOrEqual(t, height, 1)
		require.GreaterOrEqual(t, start, 0)
		require.LessOrEqual(t, start+height, cfg.ViewportHeight)

		// At the extremes the thumb touches the corresponding edge
		if cfg.ScrollOffset == 0 {
			require.Equal(t, 0, start)
		}
		if maxOffset > 0 && cfg.ScrollOffset == maxOffset {
			require.Equal(t, cfg.ViewportHeight-height, start)
		}
	})
}
