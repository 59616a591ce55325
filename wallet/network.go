package wallet

import (
	"encoding/json"
	"fmt"
	"os"
)

// NetParams defines the address and key encoding parameters for a
// Dogecoin-style network. Instances are fixed at process start and shared
// read-only by all components.
type NetParams struct {
	Name              string `json:"name"`
	MessagePrefix     string `json:"message_prefix"`
	PubKeyHashVersion byte   `json:"pubkeyhash_version"`
	ScriptHashVersion byte   `json:"scripthash_version"`
	ExtKeyPublic      uint32 `json:"ext_public_version"`
	ExtKeyPrivate     uint32 `json:"ext_private_version"`
	WIFVersion        byte   `json:"wif_version"`
}

// Predefined network parameter sets.
var (
	MainNet = NetParams{
		Name:              "mainnet",
		MessagePrefix:     "\x19Dogecoin Signed Message:\n",
		PubKeyHashVersion: 0x1e,
		ScriptHashVersion: 0x16,
		ExtKeyPublic:      0x02facafd,
		ExtKeyPrivate:     0x02fac398,
		WIFVersion:        0x9e,
	}

	TestNet = NetParams{
		Name:              "testnet",
		MessagePrefix:     "\x19Dogecoin Signed Message:\n",
		PubKeyHashVersion: 0x71,
		ScriptHashVersion: 0xc4,
		ExtKeyPublic:      0x043587cf,
		ExtKeyPrivate:     0x04358394,
		WIFVersion:        0xf1,
	}
)

// predefined maps network names to their parameter sets.
var predefined = map[string]*NetParams{
	"mainnet": &MainNet,
	"testnet": &TestNet,
}

// GetNetwork returns a predefined network by name.
// If the name is not predefined, it returns ErrInvalidNetwork.
func GetNetwork(name string) (*NetParams, error) {
	if net, ok := predefined[name]; ok {
		return net, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, name)
}

// LoadCustomNetwork loads a NetParams from a JSON file.
func LoadCustomNetwork(path string) (*NetParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wallet: failed to read network params: %w", err)
	}

	var params NetParams
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("wallet: failed to parse network params: %w", err)
	}

	if params.Name == "" {
		return nil, fmt.Errorf("wallet: network params must have a name")
	}

	return &params, nil
}
