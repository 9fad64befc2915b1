// Package vault stores receipt media encrypted at rest. Files are written as
// fernet tokens, so every blob on disk is authenticated and opening a
// tampered file fails instead of returning garbage.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fernet/fernet-go"
)

// Vault writes and reads encrypted media blobs under a single directory.
type Vault struct {
	dir string
	key *fernet.Key
}

// New decodes the base64 fernet key, ensures dir exists, and returns a Vault.
func New(dir, key string) (*Vault, error) {
	if key == "" {
		return nil, fmt.Errorf("vault key is required")
	}
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("could not decode vault key: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create vault dir: %w", err)
	}

	return &Vault{dir: dir, key: k}, nil
}

// GenerateKey returns a fresh base64 fernet key, suitable for VAULT_KEY.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("could not generate vault key: %w", err)
	}

	return k.Encode(), nil
}

// Save encrypts plaintext and writes it under a sanitized, prefix-qualified
// filename. The prefix (typically the receipt ID) keeps concurrent saves of
// identically named media from colliding. It returns the path Open accepts.
func (v *Vault) Save(prefix, name string, plaintext []byte) (string, error) {
	token, err := fernet.EncryptAndSign(plaintext, v.key)
	if err != nil {
		return "", fmt.Errorf("could not encrypt media: %w", err)
	}

	path := filepath.Join(v.dir, prefix+"_"+SanitizeFilename(name))
	if err := os.WriteFile(path, token, 0o640); err != nil {
		return "", fmt.Errorf("could not write media file: %w", err)
	}

	return path, nil
}

// Open reads the fernet token at path and returns the verified plaintext.
// A missing file, a bad signature, or a token sealed with another key is an
// error.
func (v *Vault) Open(path string) ([]byte, error) {
	token, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read media file: %w", err)
	}

	// TTL 0 disables expiry: stored receipts stay readable indefinitely.
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{v.key})
	if plaintext == nil {
		return nil, fmt.Errorf("could not decrypt media file %s: invalid token", filepath.Base(path))
	}

	return plaintext, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path separators and control characters become underscores, leading dots are
// stripped, and an empty result falls back to "file".
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	var out strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':':
			out.WriteByte('_')
		case unicode.IsControl(r) || r == unicode.ReplacementChar:
			out.WriteByte('_')
		default:
			out.WriteRune(r)
		}
	}

	cleaned := strings.TrimLeft(out.String(), ".")
	if cleaned == "" {
		return "file"
	}

	return cleaned
}
