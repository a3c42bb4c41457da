package messagebox

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/kessym/ripple/internal/mention"
)

var (
	accent   = lipgloss.Color("#5874FF")
	onAccent = lipgloss.Color("#FFFFFF")
)

func TestFlattenNoSpans(t *testing.T) {
	segs := flatten(10, nil)
	require.Len(t, segs, 1)
	require.Equal(t, segment{start: 0, end: 10}, segs[0])
}

func TestFlattenMergesLayersOfOneMention(t *testing.T) {
	// "hello  you  there": self mention layered over [6,11).
	spans := []mention.StyleSpan{
		{Start: 6, End: 11, Kind: mention.SpanBackground, Color: accent},
		{Start: 6, End: 11, Kind: mention.SpanForeground, Color: onAccent},
		{Start: 6, End: 11, Kind: mention.SpanEmphasis},
	}

	segs := flatten(17, spans)
	require.Len(t, segs, 3)

	require.Equal(t, segment{start: 0, end: 6}, segs[0], "prefix stays plain")
	require.Equal(t, segment{
		start:      6,
		end:        11,
		background: accent,
		foreground: onAccent,
		bold:       true,
	}, segs[1], "all three layers merge over the mention")
	require.Equal(t, segment{start: 11, end: 17}, segs[2], "suffix stays plain")
}

func TestFlattenLaterSpanWins(t *testing.T) {
	other := lipgloss.Color("#F16265")
	spans := []mention.StyleSpan{
		{Start: 0, End: 5, Kind: mention.SpanBackground, Color: other},
		{Start: 0, End: 5, Kind: mention.SpanBackground, Color: accent},
	}

	segs := flatten(5, spans)
	require.Len(t, segs, 1)
	require.Equal(t, accent, segs[0].background, "the later background layer takes precedence")
}

func TestFlattenDisjointMentions(t *testing.T) {
	spans := []mention.StyleSpan{
		{Start: 0, End: 4, Kind: mention.SpanForeground, Color: accent},
		{Start: 0, End: 4, Kind: mention.SpanEmphasis},
		{Start: 8, End: 12, Kind: mention.SpanForeground, Color: onAccent},
		{Start: 8, End: 12, Kind: mention.SpanEmphasis},
	}

	segs := flatten(12, spans)
	require.Len(t, segs, 3)
	require.Equal(t, accent, segs[0].foreground)
	require.True(t, segs[0].bold)
	require.Nil(t, segs[1].foreground, "gap between mentions stays plain")
	require.False(t, segs[1].bold)
	require.Equal(t, onAccent, segs[2].foreground)
}

func TestFlattenClampsOutOfRangeSpans(t *testing.T) {
	spans := []mention.StyleSpan{
		{Start: -3, End: 99, Kind: mention.SpanEmphasis},
	}

	segs := flatten(4, spans)
	require.Len(t, segs, 1)
	require.Equal(t, 0, segs[0].start)
	require.Equal(t, 4, segs[0].end)
	require.True(t, segs[0].bold)
}

func TestRenderSpansPlainTextPassThrough(t *testing.T) {
	require.Equal(t, "plain", renderSpans("plain", nil))
}
