// Package config loads the addrconv configuration file: defaults for coin and
// network, logging settings, and extra coin profiles to register at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klingon-exchange/coinaddr/pkg/chain"
	"github.com/klingon-exchange/coinaddr/pkg/helpers"
	"github.com/klingon-exchange/coinaddr/pkg/logging"
)

// DefaultDir is where the config file lives when no path is given.
const DefaultDir = "~/.coinaddr"

// ConfigFileName is the default config file name.
const ConfigFileName = "config.yaml"

// Config holds the addrconv settings.
type Config struct {
	// Coin is the symbol of the default profile (BTC, LTC, ...).
	Coin string `yaml:"coin"`

	// Network is mainnet, testnet, signet or regtest.
	Network string `yaml:"network"`

	// Logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Profiles are registered in addition to the built-in ones.
	Profiles []ProfileConfig `yaml:"profiles,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is text, json or logfmt.
	Format string `yaml:"format"`
}

// ProfileConfig is a coin profile as written in YAML. Version prefixes are hex.
type ProfileConfig struct {
	Symbol         string `yaml:"symbol"`
	Name           string `yaml:"name"`
	Bech32Main     string `yaml:"bech32_main,omitempty"`
	Bech32Test     string `yaml:"bech32_test,omitempty"`
	PubKeyHashMain string `yaml:"pubkeyhash_main"`
	ScriptHashMain string `yaml:"scripthash_main"`
	PubKeyHashTest string `yaml:"pubkeyhash_test"`
	ScriptHashTest string `yaml:"scripthash_test"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Coin:    "BTC",
		Network: string(chain.Mainnet),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	path = expandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# coinaddr configuration\n# Version prefixes in profiles are hex encoded.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the network name and every custom profile. The coin symbol
// is checked by ResolveProfile, after custom profiles are registered.
func (c *Config) Validate() error {
	if _, err := chain.ParseNetwork(c.Network); err != nil {
		return err
	}
	for i, pc := range c.Profiles {
		if _, err := pc.Profile(); err != nil {
			return fmt.Errorf("profiles[%d]: %w", i, err)
		}
	}
	return nil
}

// NetworkValue returns the configured network.
func (c *Config) NetworkValue() (chain.Network, error) {
	return chain.ParseNetwork(c.Network)
}

// ResolveProfile looks up the configured coin in the registry.
func (c *Config) ResolveProfile() (chain.Profile, error) {
	return chain.Lookup(c.Coin)
}

// ApplyProfiles registers every custom profile, replacing built-ins with the
// same symbol.
func (c *Config) ApplyProfiles(log *logging.Logger) error {
	if log == nil {
		log = logging.GetDefault()
	}

	for i, pc := range c.Profiles {
		p, err := pc.Profile()
		if err != nil {
			return fmt.Errorf("profiles[%d]: %w", i, err)
		}

		replaced := chain.IsSupported(p.Symbol)
		if err := chain.Register(p); err != nil {
			return fmt.Errorf("failed to register profile %s: %w", p.Symbol, err)
		}
		log.Debug("registered coin profile", "symbol", p.Symbol, "segwit", p.SupportsSegwit(), "replaced", replaced)
	}
	return nil
}

// Profile decodes the hex prefixes and validates the result.
func (pc ProfileConfig) Profile() (chain.Profile, error) {
	p := chain.Profile{
		Symbol:     strings.ToUpper(pc.Symbol),
		Name:       pc.Name,
		Bech32Main: strings.ToLower(pc.Bech32Main),
		Bech32Test: strings.ToLower(pc.Bech32Test),
	}

	fields := []struct {
		name string
		hex  string
		dst  *[]byte
	}{
		{"pubkeyhash_main", pc.PubKeyHashMain, &p.PubKeyHashMain},
		{"scripthash_main", pc.ScriptHashMain, &p.ScriptHashMain},
		{"pubkeyhash_test", pc.PubKeyHashTest, &p.PubKeyHashTest},
		{"scripthash_test", pc.ScriptHashTest, &p.ScriptHashTest},
	}
	for _, f := range fields {
		b, err := helpers.HexToBytes(f.hex)
		if err != nil {
			return chain.Profile{}, fmt.Errorf("profile %s: %s: %w", p.Symbol, f.name, err)
		}
		*f.dst = b
	}

	if err := p.Validate(); err != nil {
		return chain.Profile{}, err
	}
	return p, nil
}

// ProfileConfigFrom converts a profile to its YAML form.
func ProfileConfigFrom(p chain.Profile) ProfileConfig {
	return ProfileConfig{
		Symbol:         p.Symbol,
		Name:           p.Name,
		Bech32Main:     p.Bech32Main,
		Bech32Test:     p.Bech32Test,
		PubKeyHashMain: helpers.BytesToHex(p.PubKeyHashMain),
		ScriptHashMain: helpers.BytesToHex(p.ScriptHashMain),
		PubKeyHashTest: helpers.BytesToHex(p.PubKeyHashTest),
		ScriptHashTest: helpers.BytesToHex(p.ScriptHashTest),
	}
}

// ConfigPath returns the full path to the config file in a directory.
func ConfigPath(dir string) string {
	return filepath.Join(expandPath(dir), ConfigFileName)
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
