package network

import "fmt"

// NodeConfig holds the connection parameters for a ledger-indexing node.
type NodeConfig struct {
	URL      string `json:"url"`
	User     string `json:"user"`
	Password string `json:"password"`
	Network  string `json:"network"`
}

// NodePresets contains default node configurations for known networks.
// Mainnet is intentionally omitted to require explicit configuration.
var NodePresets = map[string]NodeConfig{
	"testnet": {URL: "http://localhost:3001"},
}

// ResolveConfig merges node configuration from three sources with
// decreasing priority:
//  1. CLI flags (highest priority)
//  2. Environment variables (DOGE_NODE_URL, DOGE_NODE_USER, DOGE_NODE_PASS)
//  3. Network presets (lowest priority, testnet only)
//
// For mainnet, explicit configuration is required -- there is no preset.
func ResolveConfig(flags *NodeConfig, env map[string]string, network string) (*NodeConfig, error) {
	result := NodeConfig{Network: network}

	// Layer 1: start with preset defaults if available.
	if preset, ok := NodePresets[network]; ok {
		result = preset
		result.Network = network
	}

	// Layer 2: environment variables override preset defaults.
	if env != nil {
		if v, ok := env["DOGE_NODE_URL"]; ok && v != "" {
			result.URL = v
		}
		if v, ok := env["DOGE_NODE_USER"]; ok && v != "" {
			result.User = v
		}
		if v, ok := env["DOGE_NODE_PASS"]; ok && v != "" {
			result.Password = v
		}
	}

	// Layer 3: CLI flags have highest priority.
	if flags != nil {
		if flags.URL != "" {
			result.URL = flags.URL
		}
		if flags.User != "" {
			result.User = flags.User
		}
		if flags.Password != "" {
			result.Password = flags.Password
		}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("network: %s requires explicit node configuration (set --node-url, DOGE_NODE_URL, or config file)", network)
	}

	return &result, nil
}
