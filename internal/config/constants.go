package config

import "time"

// LocalNet defaults. These match a stock Algorand sandbox / AlgoKit LocalNet node.
const (
	DefaultAlgodAddress = "http://localhost"
	DefaultAlgodPort    = 4001
	DefaultAlgodToken   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

// Deposit pool deployment.
const (
	DefaultAppID         = uint64(1002)
	DefaultUSDCAssetID   = uint64(10458941)
	DefaultDLPAssetID    = uint64(1001)
	DefaultAssetDecimals = int32(6)
)

// RequestTimeout bounds a single node round trip issued from the CLI.
const RequestTimeout = 15 * time.Second

// EnvPrefix is prepended to every environment override, e.g. DEFA_APP_ID.
const EnvPrefix = "DEFA"
