// Package identity holds the local user's keypair and derives the
// blinded aliases other clients may use to refer to it inside open
// groups.
package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Identity is the local user: an ed25519 keypair plus the profile name
// shown for self mentions in outgoing messages. The account identifier
// is the lowercase hex of the public key.
type Identity struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	name string
}

func New(priv ed25519.PrivateKey, name string) *Identity {
	return &Identity{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
		name: name,
	}
}

func Generate(name string) (*Identity, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	return New(priv, name), nil
}

// LoadOrGenerate reads the hex-encoded key seed from path, generating and
// persisting a fresh one when the file does not exist yet.
func LoadOrGenerate(path, name string) (*Identity, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		ident, err := Generate(name)
		if err != nil {
			return nil, err
		}
		seed := hex.EncodeToString(ident.priv.Seed())
		if err := os.WriteFile(path, []byte(seed+"\n"), 0o600); err != nil {
			return nil, fmt.Errorf("persist identity key: %w", err)
		}
		return ident, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read identity key: %w", err)
	}

	seed, err := hex.DecodeString(strings.TrimSpace(string(contents)))
	if err != nil {
		return nil, fmt.Errorf("decode identity key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("identity key: want %v seed bytes, got %v", ed25519.SeedSize, len(seed))
	}
	return New(ed25519.NewKeyFromSeed(seed), name), nil
}

// ID returns the account identifier, the lowercase hex public key.
func (i *Identity) ID() string {
	return hex.EncodeToString(i.pub)
}

func (i *Identity) DisplayName() string {
	return i.name
}

func (i *Identity) SetDisplayName(name string) {
	i.name = name
}

func (i *Identity) PublicKey() ed25519.PublicKey {
	return i.pub
}
