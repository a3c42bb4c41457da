package mention

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStore normalizes identifiers to lower case, like the sqlite-backed
// contacts store does.
type fakeStore struct {
	regular map[string]string
	group   map[string]string
}

func (s fakeStore) Lookup(id string, scope Scope) (string, bool) {
	m := s.regular
	if scope == ScopeOpenGroup {
		m = s.group
	}
	name, ok := m[strings.ToLower(id)]
	return name, ok
}

type fakeOracle struct {
	alias string
}

func (o fakeOracle) IsBlindedAlias(localID, candidate string, groupKey []byte) bool {
	return strings.EqualFold(candidate, o.alias)
}

type fakeIdentity struct {
	id   string
	name string
}

func (f fakeIdentity) ID() string          { return f.id }
func (f fakeIdentity) DisplayName() string { return f.name }

func TestResolveSelfCaseInsensitive(t *testing.T) {
	r := &Resolver{
		Names: fakeStore{},
		Local: fakeIdentity{id: "1A2b", name: "Me"},
	}

	for _, raw := range []string{"1a2b", "1A2B", "1A2b"} {
		res, ok := r.Resolve(raw, nil, false)
		require.True(t, ok, "self should always resolve, raw=%v", raw)
		require.Equal(t, SelfExact, res.Self)
		require.Equal(t, DefaultSelfLabel, res.Name, "incoming self resolves to the self label")
	}
}

func TestResolveSelfOutgoingUsesProfileName(t *testing.T) {
	r := &Resolver{
		Names: fakeStore{},
		Local: fakeIdentity{id: "1a2b", name: "Me"},
	}

	res, ok := r.Resolve("1a2b", nil, true)
	require.True(t, ok)
	require.Equal(t, SelfExact, res.Self)
	require.Equal(t, "Me", res.Name)
}

func TestResolveSelfLabelOverride(t *testing.T) {
	r := &Resolver{
		Names:     fakeStore{},
		Local:     fakeIdentity{id: "1a2b"},
		SelfLabel: "du",
	}

	res, ok := r.Resolve("1a2b", nil, false)
	require.True(t, ok)
	require.Equal(t, "du", res.Name)
}

func TestResolveBlindedAliasOnlyInGroup(t *testing.T) {
	r := &Resolver{
		Names:  fakeStore{group: map[string]string{}},
		Oracle: fakeOracle{alias: "15ff"},
		Local:  fakeIdentity{id: "1a2b", name: "Me"},
	}

	res, ok := r.Resolve("15ff", &OpenGroup{DomainKey: []byte("k")}, false)
	require.True(t, ok, "blinded alias should resolve inside a group")
	require.Equal(t, SelfBlinded, res.Self)
	require.Equal(t, DefaultSelfLabel, res.Name)

	_, ok = r.Resolve("15ff", nil, false)
	require.False(t, ok, "no blinding namespace outside a group context")
}

func TestResolveScopeSelection(t *testing.T) {
	r := &Resolver{
		Names: fakeStore{
			regular: map[string]string{"cafe": "Regular Carol"},
			group:   map[string]string{"cafe": "Group Carol"},
		},
		Local: fakeIdentity{id: "1a2b"},
	}

	res, ok := r.Resolve("cafe", nil, false)
	require.True(t, ok)
	require.Equal(t, "Regular Carol", res.Name)
	require.Equal(t, SelfNone, res.Self)

	res, ok = r.Resolve("cafe", &OpenGroup{}, false)
	require.True(t, ok)
	require.Equal(t, "Group Carol", res.Name)
}

func TestResolveMisses(t *testing.T) {
	r := &Resolver{
		Names: fakeStore{},
		Local: fakeIdentity{id: "1a2b"},
	}

	_, ok := r.Resolve("deadbeef", nil, false)
	require.False(t, ok, "unknown identifier is a miss, not an error")

	_, ok = r.Resolve("", nil, false)
	require.False(t, ok, "empty identifier never resolves")
}
