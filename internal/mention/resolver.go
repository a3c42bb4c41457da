package mention

import "strings"

// DefaultSelfLabel is the display name a self mention gets in incoming
// messages when the resolver carries no localized label.
const DefaultSelfLabel = "you"

// Resolver decides whether a raw identifier denotes the local user and
// produces a display name for it.
type Resolver struct {
	Names  NameStore
	Oracle BlindingOracle
	Local  LocalIdentity

	// SelfLabel overrides DefaultSelfLabel, e.g. with a localized string.
	SelfLabel string
}

// Resolution is a successfully resolved identifier.
type Resolution struct {
	Name string
	Self SelfStatus
}

// Resolve produces a display name for raw, or ok == false when none can
// be found. An unresolvable identifier is not an error; the caller leaves
// the token as raw text.
//
// The self check matches the local identifier case-insensitively, and,
// inside a group context only, asks the oracle whether raw is the local
// blinded alias. Incoming self mentions resolve to the self label;
// outgoing ones to the local profile name. Everything else goes through
// the name store, scoped to the group context if present.
func (r *Resolver) Resolve(raw string, group *OpenGroup, outgoing bool) (Resolution, bool) {
	if raw == "" {
		return Resolution{}, false
	}

	localID := ""
	if r.Local != nil {
		localID = r.Local.ID()
	}

	self := SelfNone
	switch {
	case localID != "" && strings.EqualFold(raw, localID):
		self = SelfExact
	case group != nil && r.Oracle != nil && r.Oracle.IsBlindedAlias(localID, raw, group.DomainKey):
		self = SelfBlinded
	}

	if self.IsSelf() {
		if !outgoing {
			label := r.SelfLabel
			if label == "" {
				label = DefaultSelfLabel
			}
			return Resolution{Name: label, Self: self}, true
		}
		if name := r.Local.DisplayName(); name != "" {
			return Resolution{Name: name, Self: self}, true
		}
	}

	scope := ScopeRegular
	if group != nil {
		scope = ScopeOpenGroup
	}
	name, ok := r.Names.Lookup(raw, scope)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Name: name, Self: self}, true
}
