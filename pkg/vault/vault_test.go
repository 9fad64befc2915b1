package vault_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"relay/pkg/vault"
)

func newTestVault(t *testing.T) (*vault.Vault, string) {
	t.Helper()

	key, err := vault.GenerateKey()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "media")
	v, err := vault.New(dir, key)
	require.NoError(t, err)

	return v, dir
}

func TestVault_SaveOpenRoundtrip(t *testing.T) {
	v, dir := newTestVault(t)

	plaintext := []byte("jpeg-bytes")
	path, err := v.Save("abc123", "receipt.jpg", plaintext)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "abc123_receipt.jpg"), path)

	// bytes on disk must not be the plaintext
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, raw)
	require.NotContains(t, string(raw), "jpeg-bytes")

	got, err := v.Open(path)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestVault_OpenTamperedFile(t *testing.T) {
	v, _ := newTestVault(t)

	path, err := v.Save("abc", "receipt.jpg", []byte("data"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)/2] ^= 0xff
	require.NoError(t, os.WriteFile(path, raw, 0o640))

	_, err = v.Open(path)
	require.Error(t, err)
}

func TestVault_OpenWrongKey(t *testing.T) {
	v1, _ := newTestVault(t)
	v2, _ := newTestVault(t)

	path, err := v1.Save("abc", "receipt.jpg", []byte("data"))
	require.NoError(t, err)

	_, err = v2.Open(path)
	require.Error(t, err)
}

func TestVault_OpenMissingFile(t *testing.T) {
	v, dir := newTestVault(t)

	_, err := v.Open(filepath.Join(dir, "nope"))
	require.Error(t, err)
}

func TestVault_RequiresKey(t *testing.T) {
	_, err := vault.New(t.TempDir(), "")
	require.Error(t, err)

	_, err = vault.New(t.TempDir(), "not base64 at all!!")
	require.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.jpg", "receipt.jpg"},
		{"../../etc/passwd", "passwd"},
		{"a/b\\c:d", "b_c_d"},
		{"..hidden", "hidden"},
		{"", "file"},
		{"...", "file"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, vault.SanitizeFilename(tc.in), "input %q", tc.in)
	}
}
