package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNetwork(t *testing.T) {
	main, err := GetNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, byte(0x1e), main.PubKeyHashVersion)
	assert.Equal(t, byte(0x16), main.ScriptHashVersion)
	assert.Equal(t, byte(0x9e), main.WIFVersion)
	assert.Equal(t, "\x19Dogecoin Signed Message:\n", main.MessagePrefix)

	test, err := GetNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, byte(0x71), test.PubKeyHashVersion)
	assert.Equal(t, byte(0xf1), test.WIFVersion)
}

func TestGetNetworkUnknown(t *testing.T) {
	_, err := GetNetwork("moonnet")
	require.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestLoadCustomNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	data := `{
		"name": "regtest",
		"message_prefix": "\u0019Dogecoin Signed Message:\n",
		"pubkeyhash_version": 111,
		"scripthash_version": 196,
		"wif_version": 239
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	params, err := LoadCustomNetwork(path)
	require.NoError(t, err)
	assert.Equal(t, "regtest", params.Name)
	assert.Equal(t, "\x19Dogecoin Signed Message:\n", params.MessagePrefix)
	assert.Equal(t, byte(111), params.PubKeyHashVersion)
	assert.Equal(t, byte(196), params.ScriptHashVersion)
	assert.Equal(t, byte(239), params.WIFVersion)
}

func TestLoadCustomNetworkMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noname.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pubkeyhash_version": 1}`), 0o600))

	_, err := LoadCustomNetwork(path)
	require.Error(t, err)
}

func TestLoadCustomNetworkMissingFile(t *testing.T) {
	_, err := LoadCustomNetwork(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
