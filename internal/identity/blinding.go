package identity

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Prefix of blinded aliases, distinguishing them from plain account
// identifiers on the wire.
const blindedPrefix = "15"

// BlindedID derives the blinded alias of accountID inside the group
// whose domain key is given: a keyed BLAKE2b-256 over the raw account
// bytes, hex encoded. The same account gets a different alias in every
// group, and only a holder of the account identifier can recognize it.
func BlindedID(accountID string, domainKey []byte) (string, error) {
	raw, err := hex.DecodeString(strings.ToLower(accountID))
	if err != nil {
		return "", fmt.Errorf("blinded id: account identifier is not hex: %w", err)
	}
	h, err := blake2b.New256(domainKey)
	if err != nil {
		return "", fmt.Errorf("blinded id: %w", err)
	}
	h.Write(raw)
	return blindedPrefix + hex.EncodeToString(h.Sum(nil)), nil
}

// Oracle recognizes the local user's blinded aliases. Any failure to
// derive an alias just reads as "not self via blinding".
type Oracle struct{}

func (Oracle) IsBlindedAlias(localID, candidate string, groupKey []byte) bool {
	if localID == "" || candidate == "" || len(groupKey) == 0 {
		return false
	}
	blinded, err := BlindedID(localID, groupKey)
	if err != nil {
		return false
	}
	return strings.EqualFold(blinded, candidate)
}
