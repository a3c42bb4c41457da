package mention

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextTokenFindsHexRun(t *testing.T) {
	tok, ok := nextToken("hello @1a2B who", 0)
	require.True(t, ok, "expected a token")
	require.Equal(t, 6, tok.start)
	require.Equal(t, 11, tok.end)
	require.Equal(t, "1a2B", tok.id)
}

func TestNextTokenGreedyStopsAtNonHex(t *testing.T) {
	tok, ok := nextToken("@deadbeefg tail", 0)
	require.True(t, ok, "expected a token")
	require.Equal(t, "deadbeef", tok.id, "run should stop before the non-hex byte")
	require.Equal(t, 9, tok.end)
}

func TestNextTokenBareMarker(t *testing.T) {
	tok, ok := nextToken("a @ b", 0)
	require.True(t, ok, "a bare marker is a valid zero-length-identifier match")
	require.Equal(t, 2, tok.start)
	require.Equal(t, 3, tok.end, "match should still span the marker byte")
	require.Empty(t, tok.id)
}

func TestNextTokenRespectsFromOffset(t *testing.T) {
	buf := "@aa @bb"
	tok, ok := nextToken(buf, 1)
	require.True(t, ok)
	require.Equal(t, 4, tok.start, "scan must not look behind the cursor")
	require.Equal(t, "bb", tok.id)

	_, ok = nextToken(buf, len(buf))
	require.False(t, ok, "no token past the end of the buffer")
}

func TestNextTokenNoMarker(t *testing.T) {
	_, ok := nextToken("plain text, no references", 0)
	require.False(t, ok)
}
