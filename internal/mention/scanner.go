package mention

const marker = '@'

// token is a single lexical match in the working buffer: the marker byte
// followed by a greedy, possibly empty, run of hex digits. Offsets are
// only valid against the buffer the token was scanned from.
type token struct {
	start int // offset of the marker byte
	end   int // exclusive, past the hex run
	id    string
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// nextToken scans buf forward from the given offset and returns the first
// mention token, if any. It never looks behind from, so a caller that
// advances its cursor between calls gets non-overlapping matches.
func nextToken(buf string, from int) (token, bool) {
	for i := max(from, 0); i < len(buf); i++ {
		if buf[i] != marker {
			continue
		}
		j := i + 1
		for j < len(buf) && isHexDigit(buf[j]) {
			j++
		}
		return token{start: i, end: j, id: buf[i+1 : j]}, true
	}
	return token{}, false
}
