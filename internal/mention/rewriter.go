package mention

// Result is one rewritten message: the display text and the mentions
// placed in it, in left-to-right discovery order.
type Result struct {
	Text     string
	Mentions []Mention
}

// Rewrite replaces every resolvable mention token in text with its
// display name and records where each name landed in the final buffer.
// Unresolved tokens are left as raw text. Self mentions are padded with a
// single space on each side; the padding is part of the recorded range.
//
// The loop re-scans the live buffer after every splice instead of
// patching up stale offsets; positions before the cursor are frozen and
// never rescanned. Every path moves the cursor forward — a token always
// spans at least the marker byte, so even a bare "@" with an empty hex
// run cannot stall the scan — which bounds the loop by the input length.
func Rewrite(text string, r *Resolver, group *OpenGroup, outgoing bool) Result {
	buf := text
	cursor := 0
	var mentions []Mention

	for {
		tok, ok := nextToken(buf, cursor)
		if !ok {
			break
		}

		res, ok := r.Resolve(tok.id, group, outgoing)
		if !ok {
			cursor = tok.end
			continue
		}

		name := res.Name
		if res.Self.IsSelf() {
			name = " " + name + " "
		}
		buf = buf[:tok.start] + name + buf[tok.end:]

		end := tok.start + len(name)
		mentions = append(mentions, Mention{
			Start: tok.start,
			End:   end,
			Raw:   tok.id,
			Self:  res.Self,
		})
		cursor = end
	}

	return Result{Text: buf, Mentions: mentions}
}
