package messagebox

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kessym/ripple/internal/mention"
	"github.com/kessym/ripple/pkg/utils"
)

// segment is a run of text carrying the attributes left after
// compositing every span that covers it. Spans are applied in sequence
// order, so a later span overrides an earlier one on the same attribute.
type segment struct {
	start      int
	end        int
	background lipgloss.TerminalColor
	foreground lipgloss.TerminalColor
	bold       bool
}

// flatten composites an ordered span sequence over a buffer of the given
// byte length into non-overlapping segments covering [0, length).
func flatten(length int, spans []mention.StyleSpan) []segment {
	cuts := map[int]struct{}{0: {}, length: {}}
	for _, s := range spans {
		cuts[utils.Clamp(s.Start, 0, length)] = struct{}{}
		cuts[utils.Clamp(s.End, 0, length)] = struct{}{}
	}
	offsets := make([]int, 0, len(cuts))
	for off := range cuts {
		offsets = append(offsets, off)
	}
	slices.Sort(offsets)

	segs := make([]segment, 0, len(offsets)-1)
	for i := 1; i < len(offsets); i++ {
		seg := segment{start: offsets[i-1], end: offsets[i]}
		for _, s := range spans {
			if s.Start > seg.start || s.End < seg.end {
				continue
			}
			switch s.Kind {
			case mention.SpanBackground:
				seg.background = s.Color
			case mention.SpanForeground:
				seg.foreground = s.Color
			case mention.SpanEmphasis:
				seg.bold = true
			}
		}
		segs = append(segs, seg)
	}
	return segs
}

// renderSpans applies a span sequence to the rewritten text.
func renderSpans(text string, spans []mention.StyleSpan) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	for _, seg := range flatten(len(text), spans) {
		chunk := text[seg.start:seg.end]
		if seg.background == nil && seg.foreground == nil && !seg.bold {
			b.WriteString(chunk)
			continue
		}
		style := lipgloss.NewStyle()
		if seg.background != nil {
			style = style.Background(seg.background)
		}
		if seg.foreground != nil {
			style = style.Foreground(seg.foreground)
		}
		if seg.bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(chunk))
	}
	return b.String()
}
