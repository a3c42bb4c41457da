package mention

import "github.com/charmbracelet/lipgloss"

// SpanKind distinguishes the independent style layers of a span.
type SpanKind uint8

const (
	SpanBackground SpanKind = iota
	SpanForeground
	SpanEmphasis
)

// StyleSpan styles a half-open byte range of the rewritten text. Spans
// for one mention overlap on purpose: background, foreground and emphasis
// are separate layers. The sequence is ordered; when two spans set the
// same attribute over the same range, the later one wins in the
// renderer's compositing.
type StyleSpan struct {
	Start int
	End   int
	Kind  SpanKind
	Color lipgloss.TerminalColor // nil for SpanEmphasis
}

// Theme is the color input of the annotator.
type Theme struct {
	Light    bool
	Accent   lipgloss.TerminalColor
	OnAccent lipgloss.TerminalColor

	// Foregrounds for mentions in outgoing messages, picked by mode.
	OutgoingLight lipgloss.TerminalColor
	OutgoingDark  lipgloss.TerminalColor
}

// Annotate emits the style spans for every placed mention, ordered by
// mention and, within one mention, by layering order.
//
// Self mentions sit on an accent background with a contrasting
// foreground; outgoing mentions get the mode-dependent foreground;
// incoming ones the accent foreground. On light themes an accent
// background is then layered on for every mention regardless of the
// branch taken — it can restate the self background, and the layering is
// kept rather than merged. Every mention ends with an emphasis span.
func Annotate(mentions []Mention, outgoing bool, theme Theme) []StyleSpan {
	var spans []StyleSpan
	for _, m := range mentions {
		switch {
		case m.Self.IsSelf():
			spans = append(spans,
				StyleSpan{m.Start, m.End, SpanBackground, theme.Accent},
				StyleSpan{m.Start, m.End, SpanForeground, theme.OnAccent},
			)
		case outgoing:
			fg := theme.OutgoingDark
			if theme.Light {
				fg = theme.OutgoingLight
			}
			spans = append(spans, StyleSpan{m.Start, m.End, SpanForeground, fg})
		default:
			spans = append(spans, StyleSpan{m.Start, m.End, SpanForeground, theme.Accent})
		}
		if theme.Light {
			spans = append(spans, StyleSpan{m.Start, m.End, SpanBackground, theme.Accent})
		}
		spans = append(spans, StyleSpan{m.Start, m.End, SpanEmphasis, nil})
	}
	return spans
}
