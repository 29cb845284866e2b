package config

// Config holds all defa configuration.
type Config struct {
	AlgodAddress  string `json:"algod_address"`
	AlgodPort     int    `json:"algod_port"`
	AlgodToken    string `json:"algod_token"`
	AppID         uint64 `json:"app_id"`        // deposit pool application
	USDCAssetID   uint64 `json:"usdc_asset_id"` // deposit asset
	DLPAssetID    uint64 `json:"dlp_asset_id"`  // pool share token
	AssetDecimals int32  `json:"asset_decimals"`
	DefaultWallet string `json:"default_wallet"`

	// internal: config dir path used for Save()
	configDir string
	// file values of keys currently shadowed by DEFA_* variables
	shadowed map[string]string
}
