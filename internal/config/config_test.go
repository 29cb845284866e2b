package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/defa-pool/defa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost", cfg.AlgodAddress)
	assert.Equal(t, 4001, cfg.AlgodPort)
	assert.Len(t, cfg.AlgodToken, 64)
	assert.Equal(t, uint64(1002), cfg.AppID)
	assert.Equal(t, uint64(10458941), cfg.USDCAssetID)
	assert.Equal(t, uint64(1001), cfg.DLPAssetID)
	assert.Equal(t, int32(6), cfg.AssetDecimals)
	assert.Empty(t, cfg.DefaultWallet)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cfg.AppID = 42
	cfg.DefaultWallet = "alice"

	require.NoError(t, cfg.Save())

	reloaded, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), reloaded.AppID)
	assert.Equal(t, "alice", reloaded.DefaultWallet)
	assert.Equal(t, 4001, reloaded.AlgodPort, "untouched fields keep their defaults")
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	cfg.AppID = 5
	require.NoError(t, cfg.Save())

	t.Setenv("DEFA_APP_ID", "77")
	t.Setenv("DEFA_ALGOD_ADDRESS", "https://testnet-api.algonode.cloud")

	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), reloaded.AppID)
	assert.Equal(t, "https://testnet-api.algonode.cloud", reloaded.AlgodAddress)
}

func TestEnvInvalidValueErrors(t *testing.T) {
	t.Setenv("DEFA_ALGOD_PORT", "not-a-port")
	_, err := config.Load(t.TempDir())
	assert.Error(t, err)
}

func TestAlgodURL(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	u, err := cfg.AlgodURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4001", u)
}

func TestAlgodURLExplicitPortWins(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.AlgodAddress = "http://127.0.0.1:8080/"

	u, err := cfg.AlgodURL()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", u)
}

func TestAlgodURLInvalid(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.AlgodAddress = "localhost"

	_, err = cfg.AlgodURL()
	assert.Error(t, err)
}

func TestSetAndGet(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Set("dlp_asset_id", "9"))
	require.NoError(t, cfg.Set("asset_decimals", "2"))

	v, err := cfg.Get("dlp_asset_id")
	require.NoError(t, err)
	assert.Equal(t, "9", v)
	assert.Equal(t, int32(2), cfg.AssetDecimals)
}

func TestSetRejectsBadValues(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, cfg.Set("algod_port", "70000"))
	assert.Error(t, cfg.Set("app_id", "-1"))
	assert.Error(t, cfg.Set("asset_decimals", "x"))
	assert.ErrorIs(t, cfg.Set("price_currency", "USD"), config.ErrUnknownKey)
}

func TestEveryKeyIsGettable(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	for _, k := range config.Keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}

func TestSaveKeepsEnvOverrideOutOfFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DEFA_APP_ID", "1234")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), cfg.AppID)

	require.NoError(t, cfg.Set("default_wallet", "alice"))
	require.NoError(t, cfg.Save())

	require.NoError(t, os.Unsetenv("DEFA_APP_ID"))
	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAppID, reloaded.AppID, "one-run override must not reach config.json")
	assert.Equal(t, "alice", reloaded.DefaultWallet)
}

func TestSaveKeepsFileValueUnderOverride(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("algod_port", "8080"))
	require.NoError(t, cfg.Save())

	t.Setenv("DEFA_ALGOD_PORT", "9999")
	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.AlgodPort)
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"algod_port": 8080`)
}

func TestSetOverridesEnvShadow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DEFA_APP_ID", "1234")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("app_id", "55"))
	require.NoError(t, cfg.Save())

	require.NoError(t, os.Unsetenv("DEFA_APP_ID"))
	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(55), reloaded.AppID, "an explicit set is saved")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DEFA_APP_ID", "1234")
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.FromEnv("app_id"))
	assert.False(t, cfg.FromEnv("algod_port"))

	require.NoError(t, cfg.Set("app_id", "7"))
	assert.False(t, cfg.FromEnv("app_id"), "an explicit set takes ownership of the key")
}
