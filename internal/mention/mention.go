// Package mention rewrites participant references in message text and
// annotates the result with style spans for a renderer.
//
// A reference is a marker character ("@") followed by a run of hex digits
// naming a participant identifier. Rewriting replaces each resolvable
// reference with a display name; annotation emits overlapping style layers
// (background, foreground, emphasis) over the rewritten text.
//
// The package is pure: every collaborator (name store, blinding oracle,
// local identity, theme) is passed in explicitly, one call transforms one
// message, and nothing is shared across calls.
package mention

// Scope selects the namespace a display name is looked up under.
type Scope uint8

const (
	ScopeRegular Scope = iota
	ScopeOpenGroup
)

// NameStore resolves participant identifiers to display names.
// A miss is reported as ok == false, never as an error.
type NameStore interface {
	Lookup(id string, scope Scope) (name string, ok bool)
}

// BlindingOracle reports whether candidate is the local user's blinded
// alias under a group's domain key.
type BlindingOracle interface {
	IsBlindedAlias(localID, candidate string, groupKey []byte) bool
}

// LocalIdentity exposes the local user's identifier and profile name.
type LocalIdentity interface {
	ID() string
	DisplayName() string
}

// OpenGroup is the group context mentions are resolved within. The domain
// key scopes blinded aliases to this group's namespace; outside a group
// no blinding namespace exists and the oracle is never consulted.
type OpenGroup struct {
	DomainKey []byte
}

// SelfStatus records how an identifier matched the local user.
type SelfStatus uint8

const (
	SelfNone    SelfStatus = iota
	SelfExact              // identifier equals the local identifier
	SelfBlinded            // identifier is the local blinded alias in the group
)

func (s SelfStatus) IsSelf() bool {
	return s != SelfNone
}

// Mention is one resolved reference, ranged over the final rewritten
// buffer. Start and End are byte offsets, half-open; successive mentions
// of one rewrite never overlap and are ordered by Start.
type Mention struct {
	Start int
	End   int
	Raw   string // hex identifier as it appeared in the source text
	Self  SelfStatus
}
