package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	configFile  = "config.json"
	walletsFile = "wallets.json"
	logFile     = "defa.log"
)

// ErrUnknownKey is returned by Set for a key that is not a config field.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists every settable key in display order.
var Keys = []string{
	"algod_address",
	"algod_port",
	"algod_token",
	"app_id",
	"usdc_asset_id",
	"dlp_asset_id",
	"asset_decimals",
	"default_wallet",
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.defa.
// DEFA_* environment variables are applied on top of the file.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".defa")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.configDir = dir
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk. Keys overridden from the environment keep
// their file value unless they were Set since Load.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	out := *c
	for key, v := range c.shadowed {
		if err := out.set(key, v); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath is the JSON file holding wallet metadata.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

// LogPath is the file the application logger writes to.
func (c *Config) LogPath() string {
	return filepath.Join(c.configDir, logFile)
}

// AlgodURL joins the node address and port, e.g. http://localhost:4001.
// A port already present in the address wins.
func (c *Config) AlgodURL() (string, error) {
	u, err := url.Parse(c.AlgodAddress)
	if err != nil {
		return "", fmt.Errorf("invalid algod address %q: %w", c.AlgodAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid algod address %q: scheme and host required", c.AlgodAddress)
	}
	if u.Port() == "" && c.AlgodPort > 0 {
		u.Host = u.Hostname() + ":" + strconv.Itoa(c.AlgodPort)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Get returns the string form of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "algod_address":
		return c.AlgodAddress, nil
	case "algod_port":
		return strconv.Itoa(c.AlgodPort), nil
	case "algod_token":
		return c.AlgodToken, nil
	case "app_id":
		return strconv.FormatUint(c.AppID, 10), nil
	case "usdc_asset_id":
		return strconv.FormatUint(c.USDCAssetID, 10), nil
	case "dlp_asset_id":
		return strconv.FormatUint(c.DLPAssetID, 10), nil
	case "asset_decimals":
		return strconv.Itoa(int(c.AssetDecimals)), nil
	case "default_wallet":
		return c.DefaultWallet, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// FromEnv reports whether key currently holds a DEFA_* override.
func (c *Config) FromEnv(key string) bool {
	_, ok := c.shadowed[key]
	return ok
}

// Set parses value into the field named by key. A set value is saved even if
// the key was overridden from the environment.
func (c *Config) Set(key, value string) error {
	if err := c.set(key, value); err != nil {
		return err
	}
	delete(c.shadowed, key)
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "algod_address":
		c.AlgodAddress = value
	case "algod_port":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > 65535 {
			return fmt.Errorf("invalid port %q", value)
		}
		c.AlgodPort = n
	case "algod_token":
		c.AlgodToken = value
	case "app_id", "usdc_asset_id", "dlp_asset_id":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		switch key {
		case "app_id":
			c.AppID = n
		case "usdc_asset_id":
			c.USDCAssetID = n
		default:
			c.DLPAssetID = n
		}
	case "asset_decimals":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 19 {
			return fmt.Errorf("invalid asset_decimals %q", value)
		}
		c.AssetDecimals = int32(n)
	case "default_wallet":
		c.DefaultWallet = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		AlgodAddress:  DefaultAlgodAddress,
		AlgodPort:     DefaultAlgodPort,
		AlgodToken:    DefaultAlgodToken,
		AppID:         DefaultAppID,
		USDCAssetID:   DefaultUSDCAssetID,
		DLPAssetID:    DefaultDLPAssetID,
		AssetDecimals: DefaultAssetDecimals,
		configDir:     dir,
	}
}
